package filter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approved.txt")
	content := "AAPL\nmsft\n# comment line\n\n  TSLA  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := NewListFilter(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 3 {
		t.Errorf("expected 3 approved symbols, got %d", f.Len())
	}

	tests := []struct {
		symbol string
		want   bool
	}{
		{"AAPL", true},
		{"aapl", true}, // lookup is case-insensitive
		{"MSFT", true},
		{"TSLA", true},
		{"NVDA", false},
		{"# comment line", false},
	}
	for _, tt := range tests {
		if got := f.IsEligible(tt.symbol); got != tt.want {
			t.Errorf("IsEligible(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestListFilter_MissingFile(t *testing.T) {
	if _, err := NewListFilter(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing compliance list")
	}
}

func TestAllowAll(t *testing.T) {
	f := NewAllowAll()
	for _, s := range []string{"AAPL", "", "anything"} {
		if !f.IsEligible(s) {
			t.Errorf("AllowAll rejected %q", s)
		}
	}
}
