package rescuetime

import (
	"time"

	errorvalues "github.com/dr-aiuta/rescuetimedashboard/internal/error_values"
)

// Window is the [start, end] date range one batch of canonical records is
// valid for. Dates are compared at calendar-day resolution in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (w Window) StartDate() string {
	return FormatDate(w.Start)
}

func (w Window) EndDate() string {
	return FormatDate(w.End)
}

// ParseWindow builds a window from explicit YYYY-MM-DD bounds. An invalid or
// inverted range is a caller contract violation, not data noise, so it fails.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return Window{}, errorvalues.ErrInvalidRange
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return Window{}, errorvalues.ErrInvalidRange
	}
	if e.Before(s) {
		return Window{}, errorvalues.ErrInvalidRange
	}
	return Window{Start: s, End: e}, nil
}

// NamedWindow resolves the dashboard's preset ranges relative to now.
func NamedWindow(name string, now time.Time) (Window, bool) {
	switch name {
	case "today":
		return Window{Start: now, End: now}, true
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return Window{Start: y, End: y}, true
	case "last7days":
		return Window{Start: now.AddDate(0, 0, -7), End: now}, true
	case "last30days":
		return Window{Start: now.AddDate(0, -1, 0), End: now}, true
	}
	return Window{}, false
}
