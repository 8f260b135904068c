package calculator

import (
	"errors"
	"math"

	"BreakoutSentinel/internal/model"
)

// SumVolume adds up the volume of the trailing `window` bars (or all bars
// if fewer are available).
func SumVolume(bars []model.Bar, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	return sum, nil
}

// TrailingMeanVolume returns the mean volume of the trailing `window` bars
// (or all bars if fewer are available).
func TrailingMeanVolume(bars []model.Bar, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	return sum / float64(len(bars)-start), nil
}

// TrailingRange scans the trailing `window` bars and returns the highest
// high and lowest low.
func TrailingRange(bars []model.Bar, window int) (high, low float64, err error) {
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}
