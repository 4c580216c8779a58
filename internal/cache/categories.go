// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
)

// categoriesTTL bounds how stale the category list may get even without
// explicit invalidation.
const categoriesTTL = time.Hour

// CategoryCache provides cached access to the category list.
// Categories are consulted on every localized content read, so they are
// loaded once and served from memory, with invalidation on any change.
type CategoryCache struct {
	queries *store.Queries

	mu       sync.RWMutex
	loaded   bool
	loadedAt time.Time
	all      []model.Category
	byID     map[int64]model.Category
}

// NewCategoryCache creates a new category cache.
func NewCategoryCache(queries *store.Queries) *CategoryCache {
	return &CategoryCache{
		queries: queries,
		byID:    make(map[int64]model.Category),
	}
}

// All returns all categories, loading them from the database on first use.
func (c *CategoryCache) All(ctx context.Context) ([]model.Category, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]model.Category, len(c.all))
	copy(result, c.all)
	return result, nil
}

// Get retrieves a category by ID.
func (c *CategoryCache) Get(ctx context.Context, id int64) (model.Category, bool, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return model.Category{}, false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.byID[id]
	return cat, ok, nil
}

// Lookup returns the id-keyed record map consumed by localized field
// resolution.
func (c *CategoryCache) Lookup(ctx context.Context) (map[int64]model.Category, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[int64]model.Category, len(c.byID))
	for id, cat := range c.byID {
		result[id] = cat
	}
	return result, nil
}

// Invalidate clears the cache, forcing a reload on next access.
func (c *CategoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.all = nil
	c.byID = make(map[int64]model.Category)
}

// Preload loads all categories into cache.
// Useful for warming up the cache on startup.
func (c *CategoryCache) Preload(ctx context.Context) error {
	return c.loadAll(ctx)
}

func (c *CategoryCache) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.loaded && time.Since(c.loadedAt) < categoriesTTL
	c.mu.RUnlock()
	if fresh {
		return nil
	}
	return c.loadAll(ctx)
}

func (c *CategoryCache) loadAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.loaded && time.Since(c.loadedAt) < categoriesTTL {
		return nil
	}

	categories, err := c.queries.ListCategories(ctx)
	if err != nil {
		return err
	}

	c.all = categories
	c.byID = make(map[int64]model.Category, len(categories))
	for _, cat := range categories {
		c.byID[cat.ID] = cat
	}
	c.loaded = true
	c.loadedAt = time.Now()

	return nil
}
