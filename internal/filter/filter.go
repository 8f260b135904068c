package filter

import (
	"fmt"
	"os"
	"strings"
)

// Filter is the eligibility predicate applied before any data fetch.
type Filter interface {
	IsEligible(symbol string) bool
	Name() string
}

// AllowAll accepts every symbol. Used when no compliance list is configured.
type AllowAll struct{}

func NewAllowAll() *AllowAll { return &AllowAll{} }

func (a *AllowAll) Name() string { return "allow-all" }

func (a *AllowAll) IsEligible(_ string) bool { return true }

// ListFilter accepts only symbols present in a compliance list file,
// one symbol per line.
type ListFilter struct {
	symbols map[string]struct{}
}

// NewListFilter loads the approved-symbol list from path.
func NewListFilter(path string) (*ListFilter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compliance list: %w", err)
	}
	symbols := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		s := strings.ToUpper(strings.TrimSpace(line))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		symbols[s] = struct{}{}
	}
	return &ListFilter{symbols: symbols}, nil
}

func (f *ListFilter) Name() string { return "list" }

func (f *ListFilter) IsEligible(symbol string) bool {
	_, ok := f.symbols[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}

// Len returns the number of approved symbols.
func (f *ListFilter) Len() int { return len(f.symbols) }
