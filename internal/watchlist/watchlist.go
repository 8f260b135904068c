package watchlist

import (
	"fmt"
	"os"
	"strings"
)

// Load reads the watchlist file: one ticker per line, whitespace-trimmed,
// upper-cased, blank lines dropped. An absent file is not an error; it
// yields an empty list and the scan becomes a no-op.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}
	var tickers []string
	for _, line := range strings.Split(string(data), "\n") {
		t := strings.ToUpper(strings.TrimSpace(line))
		if t == "" {
			continue
		}
		tickers = append(tickers, t)
	}
	return tickers, nil
}
