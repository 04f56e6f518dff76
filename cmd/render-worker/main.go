package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"plreport/internal/amqp"
	"plreport/internal/config"
	applog "plreport/internal/log"
	"plreport/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: applog.ComponentWorker})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err, "operation", applog.OpStartup)
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err, "operation", applog.OpStartup)
		os.Exit(1)
	}
	defer client.Close()

	w, err := worker.NewRenderWorker(cfg.SpoolDir)
	if err != nil {
		logger.Error("Failed to prepare spool directory", "error", err, "operation", applog.OpStartup)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting render worker",
			"queue", cfg.AMQPQueue,
			"spool_dir", cfg.SpoolDir,
			"operation", applog.OpStartup)
		return client.ConsumeRenderJobs(ctx, w.HandleRenderJob)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully", "operation", applog.OpShutdown)
}
