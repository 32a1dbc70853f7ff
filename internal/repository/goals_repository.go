package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/dr-aiuta/rescuetimedashboard/internal/error_values"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/cleanup"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	if goal == nil {
		return uuid.UUID{}, errors.New("goal is nil")
	}
	id := uuid.New()
	_, err := gr.conn.Exec(ctx, `INSERT INTO goals
		(id, name, goal_type, target_hours, target_minutes, category, target, schedule, notifications, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		id,
		goal.Name,
		string(goal.Type),
		goal.TargetHours,
		goal.TargetMinutes,
		string(goal.Category),
		goal.Target,
		string(goal.Schedule),
		goal.Notifications,
		goal.Enabled,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrGoalExists
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goal entity.Goal
	goal.ID = id
	row := gr.conn.QueryRow(ctx, `SELECT name, goal_type, target_hours, target_minutes, category, target, schedule, notifications, enabled, created_at, updated_at
		FROM goals WHERE id = $1;`, id)
	if err := row.Scan(&goal.Name, &goal.Type, &goal.TargetHours, &goal.TargetMinutes, &goal.Category,
		&goal.Target, &goal.Schedule, &goal.Notifications, &goal.Enabled, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) GetAll(ctx context.Context) ([]*entity.Goal, error) {
	return gr.list(ctx, `SELECT id, name, goal_type, target_hours, target_minutes, category, target, schedule, notifications, enabled, created_at, updated_at
		FROM goals ORDER BY created_at;`)
}

func (gr *GoalsRepository) GetEnabled(ctx context.Context) ([]*entity.Goal, error) {
	return gr.list(ctx, `SELECT id, name, goal_type, target_hours, target_minutes, category, target, schedule, notifications, enabled, created_at, updated_at
		FROM goals WHERE enabled = TRUE ORDER BY created_at;`)
}

func (gr *GoalsRepository) list(ctx context.Context, query string) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	rows, err := gr.conn.Query(ctx, query)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g := entity.Goal{}
		err = rows.Scan(&g.ID, &g.Name, &g.Type, &g.TargetHours, &g.TargetMinutes, &g.Category,
			&g.Target, &g.Schedule, &g.Notifications, &g.Enabled, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	if goal == nil {
		return errors.New("goal is nil")
	}
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET name = $1, goal_type = $2, target_hours = $3, target_minutes = $4,
		category = $5, target = $6, schedule = $7, notifications = $8, enabled = $9, updated_at = NOW() WHERE id = $10;`,
		goal.Name,
		string(goal.Type),
		goal.TargetHours,
		goal.TargetMinutes,
		string(goal.Category),
		goal.Target,
		string(goal.Schedule),
		goal.Notifications,
		goal.Enabled,
		goal.ID,
	)
	if err != nil {
		return errors.New("error updating goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Count(ctx context.Context) (int, error) {
	var count int
	row := gr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM goals;`)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting goals error: " + err.Error())
	}
	return count, nil
}
