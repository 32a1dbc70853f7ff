package service

import (
	"context"
	"log"
	"sync"

	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

type DashboardService struct {
	fetcher UsageFetcher
}

func NewDashboardService(fetcher UsageFetcher) *DashboardService {
	if fetcher == nil {
		log.Fatal("provided nil fetcher")
	}
	return &DashboardService{
		fetcher: fetcher,
	}
}

// FetchWindow loads the three collections for the window in parallel. All
// three must succeed; completion order doesn't matter.
func (ds *DashboardService) FetchWindow(ctx context.Context, w rescuetime.Window) (*entity.DashboardData, error) {
	var (
		data     entity.DashboardData
		wg       sync.WaitGroup
		mu       sync.Mutex
		fetchErr error
	)
	keepErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if fetchErr == nil {
			fetchErr = err
		}
	}
	wg.Add(3)
	go func() {
		defer wg.Done()
		summaries, err := ds.fetcher.FetchDailySummaries(ctx, w)
		if err != nil {
			keepErr(err)
			return
		}
		data.Summaries = summaries
	}()
	go func() {
		defer wg.Done()
		productivity, err := ds.fetcher.FetchProductivity(ctx, w)
		if err != nil {
			keepErr(err)
			return
		}
		data.Productivity = productivity
	}()
	go func() {
		defer wg.Done()
		categories, err := ds.fetcher.FetchCategories(ctx, w)
		if err != nil {
			keepErr(err)
			return
		}
		data.Categories = categories
	}()
	wg.Wait()
	// Upstream errors pass through untouched so the handler can map an
	// APIError to a gateway status.
	if fetchErr != nil {
		return nil, fetchErr
	}
	return &data, nil
}

// Dashboard is FetchWindow plus the chart transforms the browser renders.
func (ds *DashboardService) Dashboard(ctx context.Context, w rescuetime.Window) (*Dashboard, error) {
	data, err := ds.FetchWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		StartDate: w.StartDate(),
		EndDate:   w.EndDate(),
		Data:      *data,
		Charts: entity.ChartData{
			Categories:        CategoryChart(data.Categories),
			ProductivityTrend: ProductivityTrend(data),
		},
	}, nil
}
