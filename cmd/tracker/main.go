package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/legintel/ai-legislation-tracker/internal/bootstrap"
	"github.com/legintel/ai-legislation-tracker/internal/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("setup error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(cfg)

	if cfg.MetricsPort != "" {
		go func() {
			addr := ":" + cfg.MetricsPort
			mux := http.NewServeMux()
			mux.Handle("/metrics", app.Metrics.Handler())
			if err := http.ListenAndServe(addr, mux); err != nil {
				app.Logger.Warn("metrics listener stopped", "error", err)
			}
		}()
	}

	start := time.Now()
	snap, err := app.Pipeline.Run(ctx)
	app.Metrics.ObserveRunDuration(time.Since(start))
	if err != nil {
		app.Logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	app.Logger.Info("run complete",
		"bills", len(snap.Bills),
		"jurisdictions", len(snap.Jurisdictions),
		"trend_years", len(snap.Trends),
		"duration", time.Since(start).String(),
	)
}
