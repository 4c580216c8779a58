// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the site's periodic maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akbarmaulana/sifak-go/internal/cache"
	"github.com/akbarmaulana/sifak-go/internal/store"
)

// EventRetention is how long event-log entries are kept.
const EventRetention = 30 * 24 * time.Hour

// Cron expressions for the maintenance jobs.
const (
	scheduleCategoryRefresh = "0 * * * *" // hourly
	scheduleEventPrune      = "0 3 * * *" // daily, off-peak
)

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	db         *sql.DB
	categories *cache.CategoryCache
	cron       *cron.Cron
	logger     *slog.Logger
}

// New creates a scheduler. It does not start any jobs until Start.
func New(db *sql.DB, categories *cache.CategoryCache, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:         db,
		categories: categories,
		cron:       cron.New(),
		logger:     logger,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(scheduleCategoryRefresh, s.refreshCategories); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(scheduleEventPrune, s.pruneEvents); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// refreshCategories reloads the category cache so public listings pick
// up dictionary edits made outside the API within the hour.
func (s *Scheduler) refreshCategories() {
	s.categories.Invalidate()
	if err := s.categories.Preload(context.Background()); err != nil {
		s.logger.Error("category cache refresh failed", "error", err)
		return
	}
	s.logger.Debug("category cache refreshed")
}

// pruneEvents removes event-log entries older than the retention window.
func (s *Scheduler) pruneEvents() {
	cutoff := time.Now().Add(-EventRetention)
	deleted, err := store.New(s.db).PruneEvents(context.Background(), cutoff)
	if err != nil {
		s.logger.Error("event log prune failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("event log pruned", "deleted", deleted, "cutoff", cutoff)
	}
}
