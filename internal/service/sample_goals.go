package service

import "github.com/dr-aiuta/rescuetimedashboard/pkg/entity"

// SampleGoals returns the built-in goal set seeded when the goals table is
// empty. IDs and timestamps are assigned by the repository on insert.
func SampleGoals() []entity.Goal {
	return []entity.Goal{
		{
			Name:          "Work Time Goal",
			Type:          entity.GoalMoreThan,
			TargetHours:   8,
			Category:      entity.GoalCategoryCategory,
			Target:        entity.TargetAllWork,
			Schedule:      entity.ScheduleWorkday,
			Notifications: []string{"email", "desktop", "mobile"},
			Enabled:       true,
		},
		{
			Name:          "Cursor Development",
			Type:          entity.GoalMoreThan,
			TargetHours:   3,
			Category:      entity.GoalCategoryActivity,
			Target:        "Cursor",
			Schedule:      entity.ScheduleWorkHours,
			Notifications: []string{"none"},
			Enabled:       true,
		},
		{
			Name:          "Weekend Limit",
			Type:          entity.GoalLessThan,
			TargetHours:   6,
			Category:      entity.GoalCategoryTotalTime,
			Target:        entity.TargetAllTime,
			Schedule:      entity.ScheduleWeekend,
			Notifications: []string{"none"},
			Enabled:       true,
		},
		{
			Name:          "Distracting Limit (Work)",
			Type:          entity.GoalLessThan,
			TargetMinutes: 30,
			Category:      entity.GoalCategoryProductivity,
			Target:        entity.TargetDistracting,
			Schedule:      entity.ScheduleWorkHours,
			Notifications: []string{"desktop", "mobile"},
			Enabled:       true,
		},
		{
			Name:          "Personal Time Limit (Work)",
			Type:          entity.GoalLessThan,
			TargetMinutes: 20,
			Category:      entity.GoalCategoryCategory,
			Target:        "Personal",
			Schedule:      entity.ScheduleWorkHours,
			Notifications: []string{"desktop", "mobile"},
			Enabled:       true,
		},
		{
			Name:          "Daily Distracting Limit (Workday)",
			Type:          entity.GoalLessThan,
			TargetMinutes: 20,
			Category:      entity.GoalCategoryProductivity,
			Target:        entity.TargetDistracting,
			Schedule:      entity.ScheduleWorkday,
			Notifications: []string{"email", "desktop", "mobile"},
			Enabled:       true,
		},
		{
			Name:          "Daily Distracting Limit (24x7)",
			Type:          entity.GoalLessThan,
			TargetHours:   1,
			Category:      entity.GoalCategoryProductivity,
			Target:        entity.TargetDistracting,
			Schedule:      entity.ScheduleDaily,
			Notifications: []string{"desktop", "mobile"},
			Enabled:       true,
		},
		{
			Name:          "Work Day Time Limit",
			Type:          entity.GoalLessThan,
			TargetHours:   10,
			Category:      entity.GoalCategoryTotalTime,
			Target:        entity.TargetAllTime,
			Schedule:      entity.ScheduleWorkday,
			Notifications: []string{"email", "desktop", "mobile"},
			Enabled:       true,
		},
	}
}
