// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/akbarmaulana/sifak-go/internal/auth"
	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/translate"
)

// DefaultAdminEmail is the seeded admin account. The seeded password
// must be changed on first login.
const (
	DefaultAdminEmail    = "admin@fakultas.local"
	DefaultAdminPassword = "admin12345"
)

// Seed populates an empty database with the default admin account and
// the built-in categories. Idempotent: existing rows are left alone.
func Seed(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	queries := New(db)

	count, err := queries.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count == 0 {
		hash, err := auth.HashPassword(DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("hashing default password: %w", err)
		}
		if _, err := queries.CreateUser(ctx, CreateUserParams{
			Email:        DefaultAdminEmail,
			PasswordHash: hash,
			Name:         "Administrator",
			Role:         model.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("creating admin user: %w", err)
		}
		if logger != nil {
			logger.Info("seeded default admin user", "email", DefaultAdminEmail)
		}
	}

	existing, err := queries.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.Kategori] = true
	}

	seeded := 0
	for _, entry := range translate.CategoryEntries() {
		if have[entry.Kategori] {
			continue
		}
		if _, err := queries.CreateCategory(ctx, CreateCategoryParams{
			Kategori:   entry.Kategori,
			KategoriEN: entry.KategoriEN,
			KategoriAR: entry.KategoriAR,
		}); err != nil {
			return fmt.Errorf("creating category %q: %w", entry.Kategori, err)
		}
		seeded++
	}
	if seeded > 0 && logger != nil {
		logger.Info("seeded default categories", "count", seeded)
	}

	return nil
}
