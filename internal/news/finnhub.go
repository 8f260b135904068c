package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"BreakoutSentinel/internal/model"
)

// FinnhubClient implements Provider using the Finnhub company-news REST API.
type FinnhubClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Limiter *rate.Limiter
}

// NewFinnhubClient creates a news client with optional proxy support.
func NewFinnhubClient(apiKey, proxyURL string, timeout time.Duration) *FinnhubClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FinnhubClient{
		BaseURL: "https://finnhub.io/api/v1",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

func (c *FinnhubClient) Name() string { return "finnhub" }

// finnhubNews is a single entry from the company-news endpoint.
type finnhubNews struct {
	Datetime int64  `json:"datetime"` // unix seconds
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// RecentNews fetches company news between from and to. The API expects UTC
// calendar dates, so the window is widened to whole days.
func (c *FinnhubClient) RecentNews(symbol string, from, to time.Time) ([]model.NewsItem, error) {
	u := fmt.Sprintf("%s/company-news?symbol=%s&from=%s&to=%s&token=%s",
		c.BaseURL,
		url.QueryEscape(symbol),
		from.UTC().Format("2006-01-02"),
		to.UTC().Format("2006-01-02"),
		url.QueryEscape(c.APIKey),
	)

	if err := c.Limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("finnhub read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub: status %d, body: %s", resp.StatusCode, string(body))
	}

	var entries []finnhubNews
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("finnhub decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, model.NewsItem{
			Headline: e.Headline,
			Summary:  e.Summary,
			Source:   e.Source,
			URL:      e.URL,
			Time:     time.Unix(e.Datetime, 0).UTC(),
		})
	}
	return items, nil
}
