package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"BreakoutSentinel/internal/config"
	"BreakoutSentinel/internal/scanner"
	"BreakoutSentinel/internal/watchlist"
)

// Scheduler runs periodic watchlist scans and serves Telegram commands.
type Scheduler struct {
	Cron    *cron.Cron
	Scanner *scanner.Scanner
	Cfg     *config.Config
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Scanner: sc,
		Cfg:     cfg,
		Ctx:     ctx,
	}
}

// Register adds the periodic scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes a scan pass immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// scanTask reloads the watchlist and runs one full pass. The file is read
// fresh every pass so edits take effect without a restart.
func (s *Scheduler) scanTask() {
	tickers, err := watchlist.Load(s.Cfg.Watchlist.Path)
	if err != nil {
		log.Printf("[ERROR] load watchlist: %v", err)
		return
	}
	s.Scanner.Scan(tickers)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.RunScanNow()
		return "بدأ الفحص الآن…"
	case "/watchlist":
		tickers, err := watchlist.Load(s.Cfg.Watchlist.Path)
		if err != nil {
			return fmt.Sprintf("تعذر قراءة قائمة المتابعة: %v", err)
		}
		if len(tickers) == 0 {
			return "قائمة المتابعة فارغة."
		}
		return "قائمة المتابعة:\n" + strings.Join(tickers, "\n")
	case "/thresholds":
		p := s.Cfg.Signals
		return fmt.Sprintf(
			"الإعدادات الحالية:\nالحد الأدنى للارتفاع: %.1f%%\nمضاعف الفوليوم: %.1f\nالحد الأدنى للقيمة: $%.0f\nنافذة التحليل: %d شمعة\nدقائق الجلسة: %d",
			p.MinPctChange, p.VolumeMultiplier, p.ValueMinUSD, p.WindowBars, p.SessionMinutes)
	default:
		return "الأوامر المتاحة:\n• /scan\n• /watchlist\n• /thresholds"
	}
}
