// Package main is the entry point for the taskdesk CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/cli"
	"github.com/mcarden/taskdesk/internal/commands"
	"github.com/mcarden/taskdesk/internal/config"
	"github.com/mcarden/taskdesk/internal/logging"
)

func main() {
	// Create context that cancels on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	level := slog.LevelWarn
	if os.Getenv("TASKDESK_DEBUG") != "" {
		level = slog.LevelInfo
	}
	log := logging.New(os.Stderr, level)

	factory := func(ctx context.Context, cfg *config.AppConfig) (*app.Env, error) {
		return app.Open(ctx, cfg, log)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
