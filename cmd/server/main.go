// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-empire/pkg/ai"
	"github.com/opd-ai/go-empire/pkg/config"
	"github.com/opd-ai/go-empire/pkg/engine"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/logging"
	"github.com/opd-ai/go-empire/pkg/network"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	var cfg *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using defaults",
			"config_path", *configPath,
		)
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	bus := event.NewEventBus()
	game, err := engine.NewGame(cfg, bus, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}
	for i, pc := range cfg.Players {
		if !pc.Human {
			game.RegisterAI(i, ai.NewPlayer(cfg.Seed+int64(i)))
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := network.NewHub(game, cfg.Bridge, logger)
	go hub.Run(runCtx)
	game.Start(runCtx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	server := &http.Server{
		Addr:         cfg.Bridge.ListenAddress,
		Handler:      mux,
		ReadTimeout:  cfg.Bridge.ReadTimeout,
		WriteTimeout: cfg.Bridge.WriteTimeout,
	}

	go func() {
		logger.Info(runCtx, "Bridge listening",
			"address", cfg.Bridge.ListenAddress,
			"map", cfg.Scenario,
			"players", len(cfg.Players),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(runCtx, "Bridge server failed", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-runCtx.Done():
	}

	logger.Info(ctx, "Shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Shutdown failed", err)
	}
}
