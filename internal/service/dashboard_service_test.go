package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/internal/service"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

type fetcherMock struct {
	summariesErr    error
	productivityErr error
	categoriesErr   error
}

func (fm *fetcherMock) FetchDailySummaries(ctx context.Context, w rescuetime.Window) ([]entity.DailySummary, error) {
	if fm.summariesErr != nil {
		return nil, fm.summariesErr
	}
	return []entity.DailySummary{{Date: "2024-01-15", TotalSeconds: 9000, TotalHours: 2.5}}, nil
}

func (fm *fetcherMock) FetchProductivity(ctx context.Context, w rescuetime.Window) ([]entity.ProductivityEntry, error) {
	if fm.productivityErr != nil {
		return nil, fm.productivityErr
	}
	return []entity.ProductivityEntry{
		{Date: "2024-01-15", Activity: "Editors", Seconds: 9000, ProductivityScore: score(2)},
	}, nil
}

func (fm *fetcherMock) FetchCategories(ctx context.Context, w rescuetime.Window) ([]entity.CategoryEntry, error) {
	if fm.categoriesErr != nil {
		return nil, fm.categoriesErr
	}
	return []entity.CategoryEntry{
		{Date: "2024-01-15", Category: "Work", Activity: "Work", Seconds: 5400, Percentage: 75},
		{Date: "2024-01-15", Category: "Personal", Activity: "Personal", Seconds: 1800, Percentage: 25},
	}, nil
}

var serviceWindow = rescuetime.Window{
	Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
}

func TestFetchWindow(t *testing.T) {
	ctx := context.Background()
	t.Run("assembles all three collections", func(t *testing.T) {
		ds := service.NewDashboardService(&fetcherMock{})
		data, err := ds.FetchWindow(ctx, serviceWindow)
		require.NoError(t, err)
		assert.Len(t, data.Summaries, 1)
		assert.Len(t, data.Productivity, 1)
		assert.Len(t, data.Categories, 2)
	})
	t.Run("any endpoint failure fails the fetch", func(t *testing.T) {
		for _, fm := range []*fetcherMock{
			{summariesErr: errors.New("summary endpoint down")},
			{productivityErr: errors.New("productivity endpoint down")},
			{categoriesErr: errors.New("categories endpoint down")},
		} {
			ds := service.NewDashboardService(fm)
			_, err := ds.FetchWindow(ctx, serviceWindow)
			assert.Error(t, err)
		}
	})
}

func TestDashboard(t *testing.T) {
	ds := service.NewDashboardService(&fetcherMock{})
	dashboard, err := ds.Dashboard(context.Background(), serviceWindow)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", dashboard.StartDate)
	assert.Equal(t, "2024-01-15", dashboard.EndDate)
	require.Len(t, dashboard.Charts.Categories, 2)
	assert.Equal(t, "Work", dashboard.Charts.Categories[0].Name)
	assert.Equal(t, 75.0, dashboard.Charts.Categories[0].Percentage)
	require.Len(t, dashboard.Charts.ProductivityTrend, 1)
	assert.Equal(t, 2.0, dashboard.Charts.ProductivityTrend[0].Score)
	assert.Equal(t, 2.5, dashboard.Charts.ProductivityTrend[0].Hours)
}
