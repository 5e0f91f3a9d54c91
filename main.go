package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexbotov/discovery/internal/api"
	"github.com/alexbotov/discovery/internal/config"
	"github.com/alexbotov/discovery/internal/discovery"
	"github.com/alexbotov/discovery/internal/domain"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	scanner := discovery.New(cfg.Discovery.BaseDir, cfg.Discovery.EntryFile,
		discovery.WithLogger(logger),
		discovery.WithVerbose(cfg.Discovery.Verbose),
	)
	handler := api.New(scanner, domain.NewServiceAddress(cfg.Server.Port), logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.SetupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("starting discovery server",
		"port", cfg.Server.Port,
		"base_dir", scanner.BaseDir(),
		"entry_file", scanner.EntryFile(),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
