// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Command sifak runs the faculty-site backend: the public localized
// content API, the admin panel API and the translation assist.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/akbarmaulana/sifak-go/internal/cache"
	"github.com/akbarmaulana/sifak-go/internal/config"
	"github.com/akbarmaulana/sifak-go/internal/handler"
	"github.com/akbarmaulana/sifak-go/internal/i18n"
	"github.com/akbarmaulana/sifak-go/internal/logging"
	"github.com/akbarmaulana/sifak-go/internal/scheduler"
	"github.com/akbarmaulana/sifak-go/internal/session"
	"github.com/akbarmaulana/sifak-go/internal/storage"
	"github.com/akbarmaulana/sifak-go/internal/store"
	"github.com/akbarmaulana/sifak-go/internal/translate"
	"github.com/akbarmaulana/sifak-go/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("sifak %s (%s, built %s)\n", info.Version, info.GitCommit, info.BuildTime)
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing ui catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Forward WARN and ERROR records to the events table as well.
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db, logger); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	queries := store.New(db)
	categoryCache := cache.NewCategoryCache(queries)
	if err := categoryCache.Preload(ctx); err != nil {
		slog.Warn("category cache preload failed", "error", err)
	}

	// General-purpose cache, Redis-backed when configured.
	cacheCfg := cache.DefaultConfig()
	cacheCfg.RedisURL = cfg.RedisURL
	cacheCfg.Prefix = cfg.CachePrefix
	cacheCfg.DefaultTTL = time.Duration(cfg.CacheTTL) * time.Second
	cacheCfg.MaxSize = cfg.CacheMaxSize
	appCache, err := cache.NewCache(cacheCfg)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer appCache.Close()
	slog.Info("cache ready", "redis", cfg.UseRedisCache())

	translator := translate.New(cfg.TranslateAPIURL, logger, translate.WithCache(appCache))

	var uploader *storage.Uploader
	if cfg.StorageEnabled() {
		uploader, err = storage.New(ctx, storage.Options{
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Bucket:    cfg.StorageBucket,
			UseSSL:    cfg.StorageUseSSL,
		})
		if err != nil {
			return fmt.Errorf("initializing object storage: %w", err)
		}
		slog.Info("object storage ready", "endpoint", cfg.StorageEndpoint, "bucket", cfg.StorageBucket)
	} else {
		slog.Warn("object storage not configured, media uploads disabled")
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	sched := scheduler.New(db, categoryCache, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	h := handler.NewHandler(db, categoryCache, translator, uploader, sessionManager, logger)
	router := h.Routes(handler.RouterOptions{
		IsDevelopment: cfg.IsDevelopment(),
		SessionSecret: cfg.SessionSecret,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
