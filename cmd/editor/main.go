package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prioritize/infrastructure/config"
	"prioritize/infrastructure/di"
	"prioritize/interfaces/console"
	"prioritize/pkg/observability"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	renderer := console.NewRenderer(os.Stdout)

	container, err := di.InitializeEditor(cfg, renderer, renderer)
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}
	logger := container.Logger
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.EnableTracing,
		ServiceName: "prioritize-editor",
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown error", zap.Error(err))
		}
	}()

	session := container.Session

	if title, err := session.Title(ctx); err == nil {
		renderer.Notice("%s", title)
	} else {
		logger.Warn("Failed to fetch app name", zap.Error(err))
	}

	if err := session.Open(ctx); err != nil {
		logger.Warn("Initial snapshot unavailable", zap.Error(err))
	}

	driver := console.NewDriver(session, renderer, os.Stdin, logger)
	if err := driver.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Editor stopped", zap.Error(err))
	}
}
