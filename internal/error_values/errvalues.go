package errorvalues

import "errors"

var (
	ErrGoalNotFound = errors.New("goal doesn't exist")
	ErrGoalExists   = errors.New("goal with such name already exists")
	ErrInvalidGoal  = errors.New("goal definition failed validation")
	ErrInvalidRange = errors.New("invalid date range")
)
