package news

import (
	"time"

	"BreakoutSentinel/internal/model"
)

// Provider fetches recent news items for a ticker, newest first.
type Provider interface {
	RecentNews(symbol string, from, to time.Time) ([]model.NewsItem, error)
	Name() string
}

// Disabled is a no-op provider used when no news API key is configured.
// Evaluation proceeds as if no news exists.
type Disabled struct{}

func NewDisabled() *Disabled { return &Disabled{} }

func (d *Disabled) Name() string { return "disabled" }

func (d *Disabled) RecentNews(_ string, _, _ time.Time) ([]model.NewsItem, error) {
	return nil, nil
}
