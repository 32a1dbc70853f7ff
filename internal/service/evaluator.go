package service

import (
	"math"
	"sort"
	"time"

	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

// Goal evaluation is pure: every function takes the reference time and the
// already-fetched collections explicitly, so two calls with the same inputs
// produce the same output. A misconfigured goal never fails evaluation; it
// degrades to zero actual seconds and surfaces as a visibly unmet goal.

// IsGoalActive reports whether the goal's schedule covers asOf.
// Unrecognized schedules run around the clock, like daily and all_day.
func IsGoalActive(goal *entity.Goal, asOf time.Time) bool {
	day := asOf.Weekday()
	hour := asOf.Hour()
	switch goal.Schedule {
	case entity.ScheduleWorkday:
		return day >= time.Monday && day <= time.Friday
	case entity.ScheduleWeekend:
		return day == time.Saturday || day == time.Sunday
	case entity.ScheduleWorkHours:
		return day >= time.Monday && day <= time.Friday && hour >= 9 && hour <= 17
	default:
		return true
	}
}

// ActualSeconds accumulates the goal's matched time for the given calendar
// date. Productivity goals only know the Distracting and All Work buckets;
// any other target matches nothing. Entries without a productivity score
// belong to neither bucket.
func ActualSeconds(goal *entity.Goal, data *entity.DashboardData, date string) int {
	switch goal.Category {
	case entity.GoalCategoryTotalTime:
		for _, s := range data.Summaries {
			if s.Date == date {
				return s.TotalSeconds
			}
		}
		return 0
	case entity.GoalCategoryCategory:
		sum := 0
		for _, c := range data.Categories {
			if c.Date == date && c.Category == goal.Target {
				sum += c.Seconds
			}
		}
		return sum
	case entity.GoalCategoryActivity:
		sum := 0
		for _, c := range data.Categories {
			if c.Date == date && c.Activity == goal.Target {
				sum += c.Seconds
			}
		}
		return sum
	case entity.GoalCategoryProductivity:
		sum := 0
		for _, p := range data.Productivity {
			if p.Date != date || p.ProductivityScore == nil {
				continue
			}
			switch {
			case goal.Target == entity.TargetDistracting && *p.ProductivityScore < 0:
				sum += p.Seconds
			case goal.Target == entity.TargetAllWork && *p.ProductivityScore > 0:
				sum += p.Seconds
			}
		}
		return sum
	default:
		return 0
	}
}

// relevantEntries collects the raw rows ActualSeconds matched, for display
// and audit.
func relevantEntries(goal *entity.Goal, data *entity.DashboardData, date string) ([]entity.CategoryEntry, []entity.ProductivityEntry) {
	categories := make([]entity.CategoryEntry, 0)
	productivity := make([]entity.ProductivityEntry, 0)
	switch goal.Category {
	case entity.GoalCategoryCategory:
		for _, c := range data.Categories {
			if c.Date == date && c.Category == goal.Target {
				categories = append(categories, c)
			}
		}
	case entity.GoalCategoryActivity:
		for _, c := range data.Categories {
			if c.Date == date && c.Activity == goal.Target {
				categories = append(categories, c)
			}
		}
	case entity.GoalCategoryProductivity:
		for _, p := range data.Productivity {
			if p.Date != date || p.ProductivityScore == nil {
				continue
			}
			switch {
			case goal.Target == entity.TargetDistracting && *p.ProductivityScore < 0:
				productivity = append(productivity, p)
			case goal.Target == entity.TargetAllWork && *p.ProductivityScore > 0:
				productivity = append(productivity, p)
			}
		}
	}
	return categories, productivity
}

// CalculateGoalStatus derives the achievement flag and progress for the
// accumulated time. A zero target yields progress 0; combined with the
// more_than comparison this makes a zero-target more_than goal trivially
// achieved, which is the documented upstream convention.
func CalculateGoalStatus(goal *entity.Goal, actualSeconds int, date string) entity.GoalStatus {
	targetSeconds := goal.TargetSeconds()
	achieved := false
	if goal.Type == entity.GoalMoreThan {
		achieved = actualSeconds >= targetSeconds
	} else {
		achieved = actualSeconds <= targetSeconds
	}
	progress := 0.0
	if targetSeconds > 0 {
		progress = float64(actualSeconds) / float64(targetSeconds) * 100
	}
	return entity.GoalStatus{
		GoalID:             goal.ID,
		Date:               date,
		ActualHours:        actualSeconds / 3600,
		ActualMinutes:      (actualSeconds % 3600) / 60,
		TargetHours:        goal.TargetHours,
		TargetMinutes:      goal.TargetMinutes,
		Achieved:           achieved,
		ProgressPercentage: progress,
	}
}

// EvaluateGoals runs every enabled, schedule-active goal against the data
// for asOf's calendar date and returns a fully rebuilt progress list.
func EvaluateGoals(goals []*entity.Goal, data *entity.DashboardData, asOf time.Time) []entity.GoalProgress {
	date := rescuetime.FormatDate(asOf)
	progress := make([]entity.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		if goal == nil || !goal.Enabled || !IsGoalActive(goal, asOf) {
			continue
		}
		actualSeconds := ActualSeconds(goal, data, date)
		categories, productivity := relevantEntries(goal, data, date)
		progress = append(progress, entity.GoalProgress{
			Goal:   *goal,
			Status: CalculateGoalStatus(goal, actualSeconds, date),
			TodayData: entity.GoalTodayData{
				TotalSeconds:         actualSeconds,
				RelevantCategories:   categories,
				RelevantProductivity: productivity,
			},
		})
	}
	return progress
}

// CategoryChart aggregates window categories into chart points sorted by
// time descending, with pie-chart percentages.
func CategoryChart(categories []entity.CategoryEntry) []entity.CategoryChartPoint {
	points := make([]entity.CategoryChartPoint, 0)
	index := make(map[string]int)
	total := 0
	for _, c := range categories {
		total += c.Seconds
		if i, ok := index[c.Category]; ok {
			points[i].Seconds += c.Seconds
			continue
		}
		index[c.Category] = len(points)
		points = append(points, entity.CategoryChartPoint{Name: c.Category, Seconds: c.Seconds})
	}
	for i := range points {
		points[i].Hours = round2(float64(points[i].Seconds) / 3600)
		if total > 0 {
			points[i].Percentage = round2(float64(points[i].Seconds) / float64(total) * 100)
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Seconds > points[j].Seconds
	})
	return points
}

// ProductivityTrend computes, per summary day, the seconds-weighted mean
// productivity score. Unscored entries weigh into the denominator only.
func ProductivityTrend(data *entity.DashboardData) []entity.ProductivityTrendPoint {
	trend := make([]entity.ProductivityTrendPoint, 0, len(data.Summaries))
	for _, day := range data.Summaries {
		weighted := 0.0
		totalSeconds := 0
		for _, p := range data.Productivity {
			if p.Date != day.Date {
				continue
			}
			totalSeconds += p.Seconds
			if p.ProductivityScore != nil {
				weighted += *p.ProductivityScore * float64(p.Seconds)
			}
		}
		score := 0.0
		if totalSeconds > 0 {
			score = round2(weighted / float64(totalSeconds))
		}
		trend = append(trend, entity.ProductivityTrendPoint{
			Date:  day.Date,
			Score: score,
			Hours: day.TotalHours,
		})
	}
	return trend
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
