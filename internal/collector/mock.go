package collector

import "BreakoutSentinel/internal/model"

// MockFetcher returns controllable fixed data for development and testing.
// The call counters let tests assert that eligibility rejection short-circuits
// before any market-data access.
type MockFetcher struct {
	IntradayData []model.Bar
	Daily        *model.DailyStats
	IntradayErr  error
	DailyErr     error

	IntradayCalls int
	DailyCalls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntradayBars(_ string) ([]model.Bar, error) {
	m.IntradayCalls++
	if m.IntradayErr != nil {
		return nil, m.IntradayErr
	}
	return m.IntradayData, nil
}

func (m *MockFetcher) FetchDailyStats(_ string) (*model.DailyStats, error) {
	m.DailyCalls++
	if m.DailyErr != nil {
		return nil, m.DailyErr
	}
	return m.Daily, nil
}
