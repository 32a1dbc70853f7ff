package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is one calendar day's aggregate screen time.
type DailySummary struct {
	Date         string  `json:"date"`
	TotalSeconds int     `json:"total_seconds"`
	TotalHours   float64 `json:"total_hours"`
	Notes        string  `json:"notes,omitempty"`
}

// ProductivityEntry is one activity's productivity contribution for a date.
// ProductivityScore is nil when the upstream row carried no score; nil is
// distinct from a neutral score of zero.
type ProductivityEntry struct {
	Date              string   `json:"date"`
	Activity          string   `json:"activity"`
	Seconds           int      `json:"seconds"`
	Hours             float64  `json:"hours"`
	ProductivityScore *float64 `json:"productivity_score"`
}

// CategoryEntry is one category's time share for a date. Percentage is the
// share of total seconds across the fetch window, recomputed whenever the
// containing collection changes.
type CategoryEntry struct {
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Activity   string  `json:"activity"`
	Seconds    int     `json:"seconds"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// DashboardData groups the three canonical collections for one fetch window.
type DashboardData struct {
	Summaries    []DailySummary      `json:"summary"`
	Productivity []ProductivityEntry `json:"productivity"`
	Categories   []CategoryEntry     `json:"categories"`
}

type GoalType string

const (
	GoalMoreThan GoalType = "more_than"
	GoalLessThan GoalType = "less_than"
)

type GoalCategory string

const (
	GoalCategoryTotalTime    GoalCategory = "total_time"
	GoalCategoryCategory     GoalCategory = "category"
	GoalCategoryActivity     GoalCategory = "activity"
	GoalCategoryProductivity GoalCategory = "productivity"
)

type GoalSchedule string

const (
	ScheduleWorkday   GoalSchedule = "workday"
	ScheduleWeekend   GoalSchedule = "weekend"
	ScheduleDaily     GoalSchedule = "daily"
	ScheduleWorkHours GoalSchedule = "work_hours"
	ScheduleAllDay    GoalSchedule = "all_day"
)

// Semantic targets for productivity and total_time goals.
const (
	TargetDistracting = "Distracting"
	TargetAllWork     = "All Work"
	TargetAllTime     = "all time"
)

// Goal is a declarative rule owned by the operator. The evaluator reads
// goals but never mutates them.
type Goal struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Type          GoalType     `json:"type"`
	TargetHours   int          `json:"target_hours"`
	TargetMinutes int          `json:"target_minutes"`
	Category      GoalCategory `json:"category"`
	Target        string       `json:"target"`
	Schedule      GoalSchedule `json:"schedule"`
	Notifications []string     `json:"notifications"`
	Enabled       bool         `json:"enabled"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TargetSeconds is the goal's target expressed in seconds.
func (g *Goal) TargetSeconds() int {
	return g.TargetHours*3600 + g.TargetMinutes*60
}

// GoalStatus is the evaluation of one goal on one date.
type GoalStatus struct {
	GoalID             uuid.UUID `json:"goal_id"`
	Date               string    `json:"date"`
	ActualHours        int       `json:"actual_hours"`
	ActualMinutes      int       `json:"actual_minutes"`
	TargetHours        int       `json:"target_hours"`
	TargetMinutes      int       `json:"target_minutes"`
	Achieved           bool      `json:"achieved"`
	ProgressPercentage float64   `json:"progress_percentage"`
}

// GoalTodayData carries the matched raw entries behind a status, for
// display and audit.
type GoalTodayData struct {
	TotalSeconds         int                 `json:"total_seconds"`
	RelevantCategories   []CategoryEntry     `json:"relevant_categories"`
	RelevantProductivity []ProductivityEntry `json:"relevant_productivity"`
}

// GoalProgress is the composite evaluator output for one goal. It is
// recomputed fully on every evaluation, never patched.
type GoalProgress struct {
	Goal      Goal          `json:"goal"`
	Status    GoalStatus    `json:"status"`
	TodayData GoalTodayData `json:"today_data"`
}

// CategoryChartPoint is a chart-ready aggregate of one category over a
// fetch window, sorted descending by seconds in its containing slice.
type CategoryChartPoint struct {
	Name       string  `json:"name"`
	Seconds    int     `json:"value"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// ProductivityTrendPoint is one day's seconds-weighted mean productivity
// score alongside total hours, for the trend line.
type ProductivityTrendPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Hours float64 `json:"hours"`
}

// ChartData bundles the derived chart structures for one fetch window.
type ChartData struct {
	Categories        []CategoryChartPoint     `json:"categories"`
	ProductivityTrend []ProductivityTrendPoint `json:"productivity_trend"`
}
