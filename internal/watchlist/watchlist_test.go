package watchlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.txt")
	content := "  aapl \n\nMsFt\n\tBBB\t\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tickers, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"AAPL", "MSFT", "BBB"}
	if !reflect.DeepEqual(tickers, want) {
		t.Errorf("got %v, want %v", tickers, want)
	}
}

func TestLoad_AbsentFileIsNoOp(t *testing.T) {
	tickers, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("absent watchlist must not be an error, got %v", err)
	}
	if len(tickers) != 0 {
		t.Errorf("absent watchlist must yield an empty list, got %v", tickers)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.txt")
	if err := os.WriteFile(path, []byte("\n\n  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tickers, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickers) != 0 {
		t.Errorf("blank lines must be dropped, got %v", tickers)
	}
}
