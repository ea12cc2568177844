package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"btis/internal/collector"
	"btis/internal/composite"
	"btis/internal/config"
	"btis/internal/notifier"
	"btis/internal/scheduler"
	"btis/internal/writer"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogger(cfg)
	log.Info().Str("config", cfgPath).Msg("btis starting")

	col := buildCollector(cfg)
	log.Info().Str("price_source", col.Prices.Name()).
		Bool("valuation", col.Valuation != nil).Msg("feeds wired")

	var out writer.Writer = writer.NewNoopWriter()
	if cfg.Output.Path != "" {
		out = writer.NewSnapshotWriter(cfg.Output.Path)
	}

	var push notifier.Notifier = notifier.NewNoopNotifier()
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		push = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	settings := cfg.Settings()

	run := func() error {
		ctx := context.Background()
		readings, err := col.Collect(ctx)
		if err != nil {
			return fmt.Errorf("collect: %w", err)
		}

		idx := composite.Evaluate(readings, settings, time.Now().UTC())

		// Write only after the full index is computed; a failed run must
		// not disturb the previous snapshot.
		if err := out.Write(idx); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}

		evt := log.Info().Str("band", composite.Band(idx.BTIS))
		if idx.BTIS != nil {
			evt = evt.Float64("btis", *idx.BTIS)
		}
		evt.Msg("snapshot written")

		if err := push.Notify(ctx, notifier.FormatReport(idx)); err != nil {
			log.Warn().Err(err).Msg("send notification")
		}
		return nil
	}

	if cfg.Schedule.Cron == "" {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("run failed")
		}
		return
	}

	sched := scheduler.NewScheduler(run)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatal().Err(err).Msg("register schedule")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing now")
		go func() {
			if err := run(); err != nil {
				log.Error().Err(err).Msg("initial run failed")
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received, stopping")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func buildCollector(cfg *config.Config) *collector.Collector {
	timeout := cfg.Timeout()

	var prices collector.PriceSource
	switch cfg.Feeds.PriceSource {
	case "binance":
		prices = collector.NewBinanceKlinesSource(cfg.Feeds.BinanceSpotBaseURL, timeout, cfg.Proxy)
	case "yahoo":
		prices = collector.NewYahooSource(timeout, cfg.Proxy)
	default:
		prices = collector.NewCoinGeckoSource(cfg.Feeds.CoinGeckoBaseURL, timeout, cfg.Proxy)
	}

	sentiment := collector.NewFearGreedSource(cfg.Feeds.FearGreedBaseURL, timeout, cfg.Proxy)
	funding := collector.NewBinanceFundingSource(cfg.Feeds.BinanceFuturesBaseURL, timeout, cfg.Proxy)

	var valuation collector.ValuationSource
	if cfg.Glassnode.APIKey != "" {
		valuation = collector.NewGlassnodeSource(cfg.Glassnode.BaseURL, cfg.Glassnode.APIKey, timeout, cfg.Proxy)
	}

	return collector.NewCollector(prices, sentiment, funding, valuation, cfg.Feeds.LookbackDays)
}
