package rescuetime

import (
	"log/slog"
	"math"

	"github.com/bytedance/sonic"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

// The upstream API answers with one of a small set of known payload shapes.
// Each shape gets its own decoder; a payload matching none of them yields an
// empty collection with a diagnostic, never an error. A malformed cell inside
// a recognized row is filled with a documented default instead of dropping
// the row.

// summaryFeedItem is the flat-object variant of the daily summary feed.
type summaryFeedItem struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
}

// rowsPayload is the tuple-table variant shared by the analytic endpoints.
type rowsPayload struct {
	Notes string  `json:"notes"`
	Rows  [][]any `json:"rows"`
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func stringAt(row []any, i int) (string, bool) {
	if i >= len(row) {
		return "", false
	}
	s, ok := row[i].(string)
	return s, ok
}

func numberAt(row []any, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	n, ok := row[i].(float64)
	return n, ok
}

// NormalizeDailySummaries converts a raw daily_summary_feed payload into
// canonical summaries. Two shapes are recognized: a flat array of
// {date, total_hours} objects and a {rows: [[date, seconds, notes]]} table.
func NormalizeDailySummaries(raw []byte, w Window) []entity.DailySummary {
	summaries := make([]entity.DailySummary, 0)
	if len(raw) == 0 {
		slog.Warn("daily summary normalization: empty payload")
		return summaries
	}
	var items []summaryFeedItem
	if err := sonic.Unmarshal(raw, &items); err == nil {
		for _, item := range items {
			summaries = append(summaries, entity.DailySummary{
				Date:         item.Date,
				TotalSeconds: int(math.Round(item.TotalHours * 3600)),
				TotalHours:   item.TotalHours,
			})
		}
		return summaries
	}
	var payload rowsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil || payload.Rows == nil {
		slog.Warn("daily summary normalization: unrecognized payload shape")
		return summaries
	}
	for _, row := range payload.Rows {
		date, ok := stringAt(row, 0)
		if !ok {
			date = w.StartDate()
		}
		seconds, _ := numberAt(row, 1)
		notes, _ := stringAt(row, 2)
		summaries = append(summaries, entity.DailySummary{
			Date:         date,
			TotalSeconds: int(seconds),
			TotalHours:   round2(seconds / 3600),
			Notes:        notes,
		})
	}
	return summaries
}

// NormalizeProductivity converts a raw productivity breakdown payload. Rows
// are [date, seconds, people, activity, score] tuples; cells with a wrong
// type fall back to the window start date, 0, "Unknown" and a nil score.
// A nil score means "unclassified" and is never coerced to zero.
func NormalizeProductivity(raw []byte, w Window) []entity.ProductivityEntry {
	entries := make([]entity.ProductivityEntry, 0)
	var payload rowsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil || payload.Rows == nil {
		slog.Warn("productivity normalization: unrecognized payload shape")
		return entries
	}
	for _, row := range payload.Rows {
		date, ok := stringAt(row, 0)
		if !ok {
			date = w.StartDate()
		}
		seconds, _ := numberAt(row, 1)
		activity, ok := stringAt(row, 3)
		if !ok {
			activity = "Unknown"
		}
		var score *float64
		if n, ok := numberAt(row, 4); ok {
			score = &n
		}
		entries = append(entries, entity.ProductivityEntry{
			Date:              date,
			Activity:          activity,
			Seconds:           int(seconds),
			Hours:             round2(seconds / 3600),
			ProductivityScore: score,
		})
	}
	return entries
}

// NormalizeCategories converts a raw category-rank payload. Rows are
// [rank, seconds, people, category] tuples aggregated over the whole window,
// so every entry is dated at the window start and the activity defaults to
// the category name. Percentages are filled in a second pass.
func NormalizeCategories(raw []byte, w Window) []entity.CategoryEntry {
	entries := make([]entity.CategoryEntry, 0)
	var payload rowsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil || payload.Rows == nil {
		slog.Warn("category normalization: unrecognized payload shape")
		return entries
	}
	for _, row := range payload.Rows {
		seconds, _ := numberAt(row, 1)
		category, ok := stringAt(row, 3)
		if !ok {
			category = "Unknown"
		}
		entries = append(entries, entity.CategoryEntry{
			Date:     w.StartDate(),
			Category: category,
			Activity: category,
			Seconds:  int(seconds),
			Hours:    round2(seconds / 3600),
		})
	}
	return WithPercentages(entries)
}

// WithPercentages recomputes every entry's share of the collection's total
// seconds. Shares are rounded to 2 decimals and sum to ~100 for a non-empty
// collection with a positive total; a zero total yields all zeros.
func WithPercentages(entries []entity.CategoryEntry) []entity.CategoryEntry {
	total := 0
	for _, e := range entries {
		total += e.Seconds
	}
	out := make([]entity.CategoryEntry, 0, len(entries))
	for _, e := range entries {
		if total > 0 {
			e.Percentage = round2(float64(e.Seconds) / float64(total) * 100)
		} else {
			e.Percentage = 0
		}
		out = append(out, e)
	}
	return out
}
