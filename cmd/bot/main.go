package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/config"
	"BreakoutSentinel/internal/filter"
	"BreakoutSentinel/internal/news"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
	"BreakoutSentinel/internal/scanner"
	"BreakoutSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BreakoutSentinel starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, relying on actual environment variables")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second

	// Init market data fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy, timeout)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init news provider
	var newsProvider news.Provider
	if cfg.Finnhub.APIKey != "" {
		newsProvider = news.NewFinnhubClient(cfg.Finnhub.APIKey, cfg.Proxy, timeout)
	} else {
		newsProvider = news.NewDisabled()
	}
	log.Printf("[INFO] news provider: %s", newsProvider.Name())

	// Init eligibility filter
	var elig filter.Filter
	if cfg.Compliance.ListPath != "" {
		lf, err := filter.NewListFilter(cfg.Compliance.ListPath)
		if err != nil {
			log.Fatalf("[FATAL] init compliance filter: %v", err)
		}
		log.Printf("[INFO] compliance filter loaded: %d symbols", lf.Len())
		elig = lf
	} else {
		elig = filter.NewAllowAll()
		log.Println("[WARN] no compliance list configured, accepting all symbols")
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, timeout)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Core wiring
	eval := scanner.NewEvaluator(elig, fetcher, newsProvider, cfg.Signals)
	sc := scanner.NewScanner(eval, tn, rec)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, sc, cfg)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if err := tn.SendWithRetry(ctx, "✅ BreakoutSentinel يعمل الآن", 2); err != nil {
		log.Printf("[WARN] startup announcement failed: %v", err)
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] BreakoutSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BreakoutSentinel stopped")
}
