package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/picture-perfect/auth"
	"github.com/danielhkuo/picture-perfect/cliparse"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/router"
	"github.com/danielhkuo/picture-perfect/store"
	"github.com/danielhkuo/picture-perfect/telegram"
)

func main() {
	// Load .env for local runs; real environment variables win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	admins, err := auth.ParseAdminSet(cfg.AdminIDs)
	if err != nil {
		slog.Error("Error parsing admin ids", "error", err)
		os.Exit(1)
	}
	if len(admins) == 0 {
		slog.Warn("no admin ids configured; results editor is open to everyone")
	}

	// Category catalog: compiled-in unless a file overrides it
	catalog := models.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = models.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "error", err)
			os.Exit(1)
		}
	}

	// Open the document stores
	backend, err := store.Open(cfg)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	// Create dispatcher and transport
	dispatcher := router.New(backend, catalog, admins)
	bot, err := telegram.New(cfg.Token, dispatcher)
	if err != nil {
		slog.Error("telegram connection failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	slog.Info("Bot started", "categories", len(catalog), "backend", cfg.StorageBackend)
	err = bot.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot stopped")
}
