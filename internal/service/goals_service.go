package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/dr-aiuta/rescuetimedashboard/internal/error_values"
	"github.com/dr-aiuta/rescuetimedashboard/internal/repository"
	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

type GoalsService struct {
	repo repository.GoalsRepositoryI
	data WindowDataProvider
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, dataProvider WindowDataProvider) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	if dataProvider == nil {
		log.Fatal("provided nil dataProvider")
	}
	return &GoalsService{
		repo: goalsRepo,
		data: dataProvider,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, req *GoalRequest) (*entity.Goal, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidGoal, err)
	}
	id, err := gs.repo.Create(ctx, goalFromRequest(req))
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalExists) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) ListGoals(ctx context.Context) ([]*entity.Goal, error) {
	goals, err := gs.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) UpdateGoal(ctx context.Context, id uuid.UUID, req *GoalRequest) (*entity.Goal, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidGoal, err)
	}
	goal := goalFromRequest(req)
	goal.ID = id
	err := gs.repo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	updated, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return updated, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	err := gs.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

// Progress evaluates the enabled goals against asOf's calendar day. The day
// window is fetched fresh on every call; evaluation itself is pure.
func (gs *GoalsService) Progress(ctx context.Context, asOf time.Time) ([]entity.GoalProgress, error) {
	goals, err := gs.repo.GetEnabled(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	data, err := gs.data.FetchWindow(ctx, rescuetime.Window{Start: asOf, End: asOf})
	if err != nil {
		return nil, err
	}
	return EvaluateGoals(goals, data, asOf), nil
}

// SeedDefaults inserts the sample goal set when the store is empty.
func (gs *GoalsService) SeedDefaults(ctx context.Context) error {
	count, err := gs.repo.Count(ctx)
	if err != nil {
		return errors.New("goals repository error: " + err.Error())
	}
	if count > 0 {
		return nil
	}
	for _, goal := range SampleGoals() {
		_, err := gs.repo.Create(ctx, &goal)
		if err != nil && !errors.Is(err, errorvalues.ErrGoalExists) {
			return errors.New("seeding goals error: " + err.Error())
		}
	}
	return nil
}

func goalFromRequest(req *GoalRequest) *entity.Goal {
	return &entity.Goal{
		Name:          req.Name,
		Type:          entity.GoalType(req.Type),
		TargetHours:   req.TargetHours,
		TargetMinutes: req.TargetMinutes,
		Category:      entity.GoalCategory(req.Category),
		Target:        req.Target,
		Schedule:      entity.GoalSchedule(req.Schedule),
		Notifications: req.Notifications,
		Enabled:       req.Enabled,
	}
}
