package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

// GoalRequest carries an externally supplied goal definition. The same shape
// serves create and update; a goal is replaced wholesale, never patched.
type GoalRequest struct {
	Name          string   `validate:"required,min=1,max=200"`
	Type          string   `validate:"required,oneof=more_than less_than"`
	TargetHours   int      `validate:"min=0"`
	TargetMinutes int      `validate:"min=0,max=59"`
	Category      string   `validate:"required,oneof=total_time category activity productivity"`
	Target        string   `validate:"required"`
	Schedule      string   `validate:"required,oneof=workday weekend daily work_hours all_day"`
	Notifications []string `validate:"required,min=1,notify_set,dive,oneof=email desktop mobile none"`
	Enabled       bool
}

type GoalsServiceI interface {
	// Validates the definition and stores a new goal. Returns the stored goal with ID
	CreateGoal(ctx context.Context, req *GoalRequest) (*entity.Goal, error)
	// Lists every stored goal definition
	ListGoals(ctx context.Context) ([]*entity.Goal, error)
	// Validates and replaces the definition of goal id
	UpdateGoal(ctx context.Context, id uuid.UUID, req *GoalRequest) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	// Evaluates the enabled, schedule-active goals against asOf's usage data
	Progress(ctx context.Context, asOf time.Time) ([]entity.GoalProgress, error)
	// Stores the built-in sample goals once, when no goals exist yet
	SeedDefaults(ctx context.Context) error
}

// Dashboard is the window's canonical collections plus the derived chart
// structures, ready for the browser.
type Dashboard struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Data      entity.DashboardData `json:"data"`
	Charts    entity.ChartData     `json:"charts"`
}

type DashboardServiceI interface {
	// Fetches and normalizes the three collections for the window
	FetchWindow(ctx context.Context, w rescuetime.Window) (*entity.DashboardData, error)
	// FetchWindow plus chart transforms
	Dashboard(ctx context.Context, w rescuetime.Window) (*Dashboard, error)
}

// UsageFetcher is the upstream client seam. Calls are independent and may
// run concurrently; completion order doesn't matter.
type UsageFetcher interface {
	FetchDailySummaries(ctx context.Context, w rescuetime.Window) ([]entity.DailySummary, error)
	FetchProductivity(ctx context.Context, w rescuetime.Window) ([]entity.ProductivityEntry, error)
	FetchCategories(ctx context.Context, w rescuetime.Window) ([]entity.CategoryEntry, error)
}

// WindowDataProvider is what goal evaluation needs from the dashboard side.
type WindowDataProvider interface {
	FetchWindow(ctx context.Context, w rescuetime.Window) (*entity.DashboardData, error)
}
