package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/friendsofgo/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nrfta/noticeboard-go/board"
	"github.com/nrfta/noticeboard-go/history"
	"github.com/nrfta/noticeboard-go/internal/config"
	"github.com/nrfta/noticeboard-go/internal/tui"
	"github.com/nrfta/noticeboard-go/metrics"
	"github.com/nrfta/noticeboard-go/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		restore     string
		logPath     string
		metricsAddr string
		debug       bool
	)
	flag.StringVar(&configPath, "config", "noticeboard.toml", "Path to the TOML config file")
	flag.StringVar(&restore, "restore", "", "Hand-off token printed by a previous run")
	flag.StringVar(&logPath, "log", "noticeboard.log", "Log file path")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled when empty)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	timeout, err := cfg.HTTPTimeout()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer logFile.Close()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if metricsAddr != "" {
		srv := &http.Server{
			Addr:    metricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Close()
	}

	client := rest.New(cfg.BaseURL,
		rest.WithListPath(cfg.ListPath),
		rest.WithBearerToken(cfg.Token),
		rest.WithTimeout(timeout),
	)

	var rp *history.RestorePoint
	if restore != "" {
		rp = history.RestoreFromToken(restore)
		if rp == nil {
			logger.Warn("ignoring invalid restore token")
		}
	}

	ctrl := board.New(client, rp,
		board.WithIdentity(board.Identity{UserID: cfg.UserID, Role: cfg.Role}),
		board.WithLogger(logger),
		board.WithMetrics(m),
	)

	logger.Info("starting notice board", "base_url", cfg.BaseURL, "user_id", cfg.UserID)

	final, err := tea.NewProgram(tui.New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run program")
	}

	model, ok := final.(tui.Model)
	if !ok || model.Handoff() == nil {
		return nil
	}

	token, err := history.EncodeToken(*model.Handoff())
	if err != nil {
		return err
	}
	fmt.Printf("opened notice %s\nrestore with: -restore %s\n", model.Handoff().RecordID, token)
	return nil
}
