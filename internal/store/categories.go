// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
)

const categoryColumns = `id, kategori, kategori_en, kategori_ar, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Kategori, &c.KategoriEN, &c.KategoriAR, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCategories returns all categories ordered by base name. The set is
// small (a handful of rows), so no pagination.
func (q *Queries) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+categoryColumns+`
		FROM kategoris ORDER BY kategori ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetCategory fetches one category by id.
func (q *Queries) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	return scanCategory(q.db.QueryRowContext(ctx, `SELECT `+categoryColumns+`
		FROM kategoris WHERE id = ?`, id))
}

// CreateCategoryParams holds the insertable columns of a category.
type CreateCategoryParams struct {
	Kategori   string
	KategoriEN string
	KategoriAR string
}

// CreateCategory inserts a category and returns the stored row.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (model.Category, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx, `INSERT INTO kategoris
		(kategori, kategori_en, kategori_ar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		arg.Kategori, arg.KategoriEN, arg.KategoriAR, now, now)
	if err != nil {
		return model.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Category{}, err
	}
	return q.GetCategory(ctx, id)
}

// UpdateCategoryParams holds the updatable columns of a category.
type UpdateCategoryParams struct {
	ID         int64
	Kategori   string
	KategoriEN string
	KategoriAR string
}

// UpdateCategory updates a category in place.
func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, `UPDATE kategoris SET
		kategori = ?, kategori_en = ?, kategori_ar = ?, updated_at = ?
		WHERE id = ?`,
		arg.Kategori, arg.KategoriEN, arg.KategoriAR, time.Now(), arg.ID)
	return err
}

// DeleteCategory hard-deletes a category. News rows referencing it fall
// back to their legacy inline category columns on resolution.
func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM kategoris WHERE id = ?`, id)
	return err
}
