package rescuetime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dr-aiuta/rescuetimedashboard/pkg/cleanup"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

const defaultBaseURL = "https://www.rescuetime.com/anapi"

type APIConfig interface {
	APIKey() string
	BaseURL() string
}

type RTCfg struct {
	Key string
	URL string
}

func (c *RTCfg) APIKey() string {
	return c.Key
}

func (c *RTCfg) BaseURL() string {
	if c.URL == "" {
		return defaultBaseURL
	}
	return c.URL
}

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	Endpoint string
	Status   int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rescuetime api error: status %d on %s", e.Status, e.Endpoint)
}

// Client fetches usage data from the RescueTime analytic API and hands the
// raw payloads to the normalizer. The three endpoint fetches are independent
// and order-insensitive.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg APIConfig) *Client {
	if cfg.APIKey() == "" {
		log.Fatal("rescuetime api key is not set")
	}
	httpClient := &http.Client{Timeout: time.Second * 15}
	cleanup.Register(&cleanup.Job{
		Name: "closing idle upstream connections",
		F: func() error {
			httpClient.CloseIdleConnections()
			return nil
		},
	})
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL(),
		apiKey:     cfg.APIKey(),
	}
}

// NewClientWith builds a client over an explicit http.Client and base URL.
func NewClientWith(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	query.Set("key", c.apiKey)
	query.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.New("building request for " + endpoint + " error: " + err.Error())
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("requesting " + endpoint + " error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading response of " + endpoint + " error: " + err.Error())
	}
	return body, nil
}

func windowQuery(w Window) url.Values {
	q := url.Values{}
	q.Set("restrict_begin", w.StartDate())
	q.Set("restrict_end", w.EndDate())
	return q
}

// FetchDailySummaries loads per-day totals for the window.
func (c *Client) FetchDailySummaries(ctx context.Context, w Window) ([]entity.DailySummary, error) {
	q := windowQuery(w)
	q.Set("perspective", "interval")
	q.Set("resolution_time", "day")
	raw, err := c.fetch(ctx, "daily_summary_feed", q)
	if err != nil {
		return nil, err
	}
	return NormalizeDailySummaries(raw, w), nil
}

// FetchProductivity loads the per-activity productivity breakdown.
func (c *Client) FetchProductivity(ctx context.Context, w Window) ([]entity.ProductivityEntry, error) {
	q := windowQuery(w)
	q.Set("perspective", "interval")
	q.Set("resolution_time", "day")
	q.Set("restrict_kind", "productivity")
	raw, err := c.fetch(ctx, "data", q)
	if err != nil {
		return nil, err
	}
	return NormalizeProductivity(raw, w), nil
}

// FetchCategories loads the category time shares, rank-aggregated over the
// whole window.
func (c *Client) FetchCategories(ctx context.Context, w Window) ([]entity.CategoryEntry, error) {
	q := windowQuery(w)
	q.Set("perspective", "rank")
	q.Set("resolution_time", "day")
	q.Set("restrict_kind", "category")
	raw, err := c.fetch(ctx, "data", q)
	if err != nil {
		return nil, err
	}
	return NormalizeCategories(raw, w), nil
}
