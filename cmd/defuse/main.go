package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"example.com/defuse/internal/app"
	"example.com/defuse/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "defuse:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log, app.Options{})
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return a.Run(ctx)
}

// Logs never go to stdout. Without LOG_FILE they go to stderr, which the
// full-screen UI shares with the game, so only errors are kept there.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	} else if app.ScreenMode(cfg) && lvl < slog.LevelError {
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("env", cfg.Env), closeFn, nil
}
