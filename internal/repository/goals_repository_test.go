package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/dr-aiuta/rescuetimedashboard/internal/error_values"
	"github.com/dr-aiuta/rescuetimedashboard/internal/repository"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

var (
	goalID   = uuid.New()
	testGoal = entity.Goal{
		ID:            goalID,
		Name:          "Work Time Goal",
		Type:          entity.GoalMoreThan,
		TargetHours:   8,
		TargetMinutes: 0,
		Category:      entity.GoalCategoryCategory,
		Target:        "All Work",
		Schedule:      entity.ScheduleWorkday,
		Notifications: []string{"email", "desktop"},
		Enabled:       true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	goalColumns = []string{"name", "goal_type", "target_hours", "target_minutes", "category", "target", "schedule", "notifications", "enabled", "created_at", "updated_at"}
	listColumns = append([]string{"id"}, goalColumns...)
)

func goalRowValues(g *entity.Goal) []any {
	return []any{g.Name, g.Type, g.TargetHours, g.TargetMinutes, g.Category,
		g.Target, g.Schedule, g.Notifications, g.Enabled, g.CreatedAt, g.UpdatedAt}
}

func TestCreateGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO goals`)
	args := []any{pgxmock.AnyArg(), testGoal.Name, string(testGoal.Type), testGoal.TargetHours,
		testGoal.TargetMinutes, string(testGoal.Category), testGoal.Target, string(testGoal.Schedule),
		testGoal.Notifications, testGoal.Enabled}
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		goal := testGoal
		id, err := repo.Create(ctx, &goal)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.UUID{}, id)
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		goal := testGoal
		_, err := repo.Create(ctx, &goal)
		assert.ErrorIs(t, err, errorvalues.ErrGoalExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		goal := testGoal
		_, err := repo.Create(ctx, &goal)
		assert.Error(t, err)
	})
	t.Run("nil goal", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
}

func TestGetGoalByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM goals WHERE id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID).
			WillReturnRows(pgxmock.NewRows(goalColumns).AddRow(goalRowValues(&testGoal)...))
		result, err := repo.GetByID(ctx, goalID)
		require.NoError(t, err)
		assert.Equal(t, testGoal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goalID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	t.Run("get all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM goals ORDER BY created_at;`)).
			WillReturnRows(pgxmock.NewRows(listColumns).
				AddRow(append([]any{testGoal.ID}, goalRowValues(&testGoal)...)...))
		goals, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, testGoal, *goals[0])
	})
	t.Run("get enabled", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM goals WHERE enabled = TRUE ORDER BY created_at;`)).
			WillReturnRows(pgxmock.NewRows(listColumns).
				AddRow(append([]any{testGoal.ID}, goalRowValues(&testGoal)...)...))
		goals, err := repo.GetEnabled(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.True(t, goals[0].Enabled)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM goals ORDER BY created_at;`)).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetAll(ctx)
		assert.Error(t, err)
	})
}

func TestUpdateGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE goals SET`)
	args := []any{testGoal.Name, string(testGoal.Type), testGoal.TargetHours, testGoal.TargetMinutes,
		string(testGoal.Category), testGoal.Target, string(testGoal.Schedule), testGoal.Notifications,
		testGoal.Enabled, testGoal.ID}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		goal := testGoal
		assert.NoError(t, repo.Update(ctx, &goal))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		goal := testGoal
		assert.ErrorIs(t, repo.Update(ctx, &goal), errorvalues.ErrGoalNotFound)
	})
}

func TestDeleteGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(goalID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, goalID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(goalID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, goalID), errorvalues.ErrGoalNotFound)
	})
}

func TestCountGoals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM goals;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(8))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.Count(ctx)
		assert.Error(t, err)
	})
}
