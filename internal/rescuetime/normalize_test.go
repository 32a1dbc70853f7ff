package rescuetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

var testWindow = rescuetime.Window{
	Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
}

func TestNormalizeDailySummaries(t *testing.T) {
	t.Run("flat object variant", func(t *testing.T) {
		raw := []byte(`[{"date":"2024-01-15","total_hours":2.5},{"date":"2024-01-16","total_hours":0.25}]`)
		summaries := rescuetime.NormalizeDailySummaries(raw, testWindow)
		assert.Len(t, summaries, 2)
		assert.Equal(t, "2024-01-15", summaries[0].Date)
		assert.Equal(t, 9000, summaries[0].TotalSeconds)
		assert.Equal(t, 2.5, summaries[0].TotalHours)
		assert.Equal(t, 900, summaries[1].TotalSeconds)
	})
	t.Run("rows tuple variant", func(t *testing.T) {
		raw := []byte(`{"notes":"","rows":[["2024-01-15",3600,"focus day"]]}`)
		summaries := rescuetime.NormalizeDailySummaries(raw, testWindow)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "2024-01-15", summaries[0].Date)
		assert.Equal(t, 3600, summaries[0].TotalSeconds)
		assert.Equal(t, 1.0, summaries[0].TotalHours)
		assert.Equal(t, "focus day", summaries[0].Notes)
	})
	t.Run("wrong-typed cells get defaults", func(t *testing.T) {
		raw := []byte(`{"rows":[[42,"many",7]]}`)
		summaries := rescuetime.NormalizeDailySummaries(raw, testWindow)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "2024-01-15", summaries[0].Date)
		assert.Equal(t, 0, summaries[0].TotalSeconds)
		assert.Empty(t, summaries[0].Notes)
	})
	t.Run("unrecognized shape yields empty collection", func(t *testing.T) {
		for _, raw := range [][]byte{
			nil,
			[]byte(`{"error":"# key not found"}`),
			[]byte(`"just a string"`),
			[]byte(`{"rows":`),
		} {
			summaries := rescuetime.NormalizeDailySummaries(raw, testWindow)
			assert.NotNil(t, summaries)
			assert.Empty(t, summaries)
		}
	})
}

func TestNormalizeProductivity(t *testing.T) {
	t.Run("well-formed rows", func(t *testing.T) {
		raw := []byte(`{"rows":[["2024-01-15",1200,1,"Social Media",-2],["2024-01-15",5400,1,"Editors",2]]}`)
		entries := rescuetime.NormalizeProductivity(raw, testWindow)
		assert.Len(t, entries, 2)
		assert.Equal(t, "Social Media", entries[0].Activity)
		assert.Equal(t, 1200, entries[0].Seconds)
		assert.Equal(t, 0.33, entries[0].Hours)
		if assert.NotNil(t, entries[0].ProductivityScore) {
			assert.Equal(t, -2.0, *entries[0].ProductivityScore)
		}
	})
	t.Run("zero score is kept, not treated as absent", func(t *testing.T) {
		raw := []byte(`{"rows":[["2024-01-15",600,1,"Utilities",0]]}`)
		entries := rescuetime.NormalizeProductivity(raw, testWindow)
		assert.Len(t, entries, 1)
		if assert.NotNil(t, entries[0].ProductivityScore) {
			assert.Equal(t, 0.0, *entries[0].ProductivityScore)
		}
	})
	t.Run("malformed cells degrade to defaults", func(t *testing.T) {
		raw := []byte(`{"rows":[[17,"x",null,42,"not a score"]]}`)
		entries := rescuetime.NormalizeProductivity(raw, testWindow)
		assert.Len(t, entries, 1)
		assert.Equal(t, testWindow.StartDate(), entries[0].Date)
		assert.Equal(t, "Unknown", entries[0].Activity)
		assert.Equal(t, 0, entries[0].Seconds)
		assert.Nil(t, entries[0].ProductivityScore)
	})
	t.Run("short rows don't panic", func(t *testing.T) {
		raw := []byte(`{"rows":[["2024-01-15"]]}`)
		entries := rescuetime.NormalizeProductivity(raw, testWindow)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Unknown", entries[0].Activity)
		assert.Nil(t, entries[0].ProductivityScore)
	})
	t.Run("missing rows property yields empty collection", func(t *testing.T) {
		entries := rescuetime.NormalizeProductivity([]byte(`{"notes":"no data"}`), testWindow)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestNormalizeCategories(t *testing.T) {
	t.Run("rank rows with percentages", func(t *testing.T) {
		raw := []byte(`{"rows":[[1,3600,1,"Work"],[2,1800,1,"Personal"]]}`)
		entries := rescuetime.NormalizeCategories(raw, testWindow)
		assert.Len(t, entries, 2)
		assert.Equal(t, "Work", entries[0].Category)
		assert.Equal(t, "Work", entries[0].Activity)
		assert.Equal(t, testWindow.StartDate(), entries[0].Date)
		assert.Equal(t, 66.67, entries[0].Percentage)
		assert.Equal(t, 33.33, entries[1].Percentage)
	})
	t.Run("zero total yields zero percentages", func(t *testing.T) {
		raw := []byte(`{"rows":[[1,0,1,"Work"],[2,0,1,"Personal"]]}`)
		entries := rescuetime.NormalizeCategories(raw, testWindow)
		assert.Len(t, entries, 2)
		for _, e := range entries {
			assert.Zero(t, e.Percentage)
		}
	})
	t.Run("unrecognized shape yields empty collection", func(t *testing.T) {
		entries := rescuetime.NormalizeCategories([]byte(`[1,2,3]`), testWindow)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestWithPercentagesSumInvariant(t *testing.T) {
	entries := []entity.CategoryEntry{
		{Category: "A", Seconds: 3331},
		{Category: "B", Seconds: 3331},
		{Category: "C", Seconds: 3331},
		{Category: "D", Seconds: 7},
	}
	result := rescuetime.WithPercentages(entries)
	sum := 0.0
	for _, e := range result {
		sum += e.Percentage
	}
	assert.InDelta(t, 100, sum, 0.1*float64(len(result)))
}
