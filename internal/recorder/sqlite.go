package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"BreakoutSentinel/internal/model"
)

// SQLiteRecorder persists the scan audit trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_outcomes (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			timestamp     INTEGER NOT NULL,
			ticker        TEXT NOT NULL,
			status        TEXT NOT NULL,
			price         REAL,
			pct_change    REAL,
			recent_volume INTEGER,
			avg_volume    INTEGER,
			approx_value  INTEGER,
			pct_gate      INTEGER,
			volume_gate   INTEGER,
			value_gate    INTEGER,
			news_count    INTEGER,
			support       REAL,
			resistance    REAL,
			alerted       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_run ON scan_outcomes(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_ts ON scan_outcomes(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			ticker    TEXT NOT NULL,
			message   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordOutcome(runID string, out *model.ScanOutcome, alerted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	if out.Result == nil {
		_, err := r.db.Exec(`INSERT INTO scan_outcomes
			(run_id, timestamp, ticker, status, alerted)
			VALUES (?,?,?,?,?)`,
			runID, now, out.Ticker, string(out.Status), boolInt(alerted),
		)
		return err
	}

	res := out.Result
	_, err := r.db.Exec(`INSERT INTO scan_outcomes
		(run_id, timestamp, ticker, status, price, pct_change,
		 recent_volume, avg_volume, approx_value,
		 pct_gate, volume_gate, value_gate,
		 news_count, support, resistance, alerted)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, now, out.Ticker, string(out.Status), res.Price, res.PctChange,
		res.RecentVolume, res.AvgDailyVolume, res.ApproxValue,
		boolInt(res.PctGate), boolInt(res.VolumeGate), boolInt(res.ValueGate),
		res.NewsCount, res.Support, res.Resistance, boolInt(alerted),
	)
	return err
}

func (r *SQLiteRecorder) RecordAlert(runID, ticker, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alerts (run_id, timestamp, ticker, message)
		VALUES (?,?,?,?)`,
		runID, time.Now().Unix(), ticker, message,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
