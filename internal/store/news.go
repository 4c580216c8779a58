// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
)

const newsColumns = `id, judul, slug, konten, gambar, kategori_id,
	kategori, kategori_en, kategori_ar,
	judul_en, konten_en, judul_ar, konten_ar,
	author_id, created_at, updated_at`

func scanNews(row interface{ Scan(...any) error }) (model.News, error) {
	var n model.News
	err := row.Scan(
		&n.ID, &n.Judul, &n.Slug, &n.Konten, &n.Gambar, &n.KategoriID,
		&n.Kategori, &n.KategoriEN, &n.KategoriAR,
		&n.JudulEN, &n.KontenEN, &n.JudulAR, &n.KontenAR,
		&n.AuthorID, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// ListNewsParams controls pagination for news listings.
type ListNewsParams struct {
	Limit  int64
	Offset int64
}

// ListNews returns news articles newest first.
func (q *Queries) ListNews(ctx context.Context, arg ListNewsParams) ([]model.News, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+newsColumns+`
		FROM beritas ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// ListNewsByCategoryParams filters news by category id.
type ListNewsByCategoryParams struct {
	KategoriID int64
	Limit      int64
	Offset     int64
}

// ListNewsByCategory returns news in one category, newest first.
func (q *Queries) ListNewsByCategory(ctx context.Context, arg ListNewsByCategoryParams) ([]model.News, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+newsColumns+`
		FROM beritas WHERE kategori_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.KategoriID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// CountNews returns the total number of news articles.
func (q *Queries) CountNews(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beritas`).Scan(&count)
	return count, err
}

// GetNews fetches one news article by id.
func (q *Queries) GetNews(ctx context.Context, id int64) (model.News, error) {
	return scanNews(q.db.QueryRowContext(ctx, `SELECT `+newsColumns+`
		FROM beritas WHERE id = ?`, id))
}

// CreateNewsParams holds the insertable columns of a news article.
type CreateNewsParams struct {
	Judul      string
	Slug       string
	Konten     string
	Gambar     string
	KategoriID sql.NullInt64
	Kategori   string
	KategoriEN string
	KategoriAR string
	JudulEN    string
	KontenEN   string
	JudulAR    string
	KontenAR   string
	AuthorID   sql.NullInt64
	CreatedAt  time.Time
}

// CreateNews inserts a news article and returns the stored row.
// CreatedAt defaults to now when the editor did not set it explicitly.
func (q *Queries) CreateNews(ctx context.Context, arg CreateNewsParams) (model.News, error) {
	if arg.CreatedAt.IsZero() {
		arg.CreatedAt = time.Now()
	}
	res, err := q.db.ExecContext(ctx, `INSERT INTO beritas
		(judul, slug, konten, gambar, kategori_id,
		 kategori, kategori_en, kategori_ar,
		 judul_en, konten_en, judul_ar, konten_ar,
		 author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Judul, arg.Slug, arg.Konten, arg.Gambar, arg.KategoriID,
		arg.Kategori, arg.KategoriEN, arg.KategoriAR,
		arg.JudulEN, arg.KontenEN, arg.JudulAR, arg.KontenAR,
		arg.AuthorID, arg.CreatedAt, arg.CreatedAt)
	if err != nil {
		return model.News{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.News{}, err
	}
	return q.GetNews(ctx, id)
}

// UpdateNewsParams holds the updatable columns of a news article.
type UpdateNewsParams struct {
	ID         int64
	Judul      string
	Slug       string
	Konten     string
	Gambar     string
	KategoriID sql.NullInt64
	Kategori   string
	KategoriEN string
	KategoriAR string
	JudulEN    string
	KontenEN   string
	JudulAR    string
	KontenAR   string
}

// UpdateNews updates a news article in place.
func (q *Queries) UpdateNews(ctx context.Context, arg UpdateNewsParams) error {
	_, err := q.db.ExecContext(ctx, `UPDATE beritas SET
		judul = ?, slug = ?, konten = ?, gambar = ?, kategori_id = ?,
		kategori = ?, kategori_en = ?, kategori_ar = ?,
		judul_en = ?, konten_en = ?, judul_ar = ?, konten_ar = ?,
		updated_at = ?
		WHERE id = ?`,
		arg.Judul, arg.Slug, arg.Konten, arg.Gambar, arg.KategoriID,
		arg.Kategori, arg.KategoriEN, arg.KategoriAR,
		arg.JudulEN, arg.KontenEN, arg.JudulAR, arg.KontenAR,
		time.Now(), arg.ID)
	return err
}

// DeleteNews hard-deletes a news article. There is no soft delete.
func (q *Queries) DeleteNews(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM beritas WHERE id = ?`, id)
	return err
}
