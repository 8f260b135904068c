package calculator

import (
	"errors"
	"math"

	"BreakoutSentinel/internal/model"
)

// PercentChange computes the percent move of the final close against the
// close `lookback` bars earlier. When fewer than `lookback` bars exist the
// earliest close is used as the reference. A zero reference close yields
// 0.0 rather than an error.
func PercentChange(bars []model.Bar, lookback int) (float64, error) {
	if lookback <= 0 {
		return 0, errors.New("lookback must be positive")
	}
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	last := bars[len(bars)-1].Close
	ref := bars[0].Close
	if len(bars) >= lookback {
		ref = bars[len(bars)-lookback].Close
	}
	if !isFinite(last) || !isFinite(ref) {
		return 0, errors.New("malformed close price")
	}
	if ref == 0 {
		return 0, nil
	}
	pct := (last - ref) / ref * 100
	if !isFinite(pct) {
		return 0, errors.New("malformed percent change")
	}
	return pct, nil
}

// Round rounds x to the given number of decimal places.
func Round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
