// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
)

const announcementColumns = `id, judul, slug, konten,
	judul_en, konten_en, judul_ar, konten_ar,
	created_at, updated_at`

func scanAnnouncement(row interface{ Scan(...any) error }) (model.Announcement, error) {
	var a model.Announcement
	err := row.Scan(
		&a.ID, &a.Judul, &a.Slug, &a.Konten,
		&a.JudulEN, &a.KontenEN, &a.JudulAR, &a.KontenAR,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// ListAnnouncementsParams controls pagination for announcement listings.
type ListAnnouncementsParams struct {
	Limit  int64
	Offset int64
}

// ListAnnouncements returns announcements newest first.
func (q *Queries) ListAnnouncements(ctx context.Context, arg ListAnnouncementsParams) ([]model.Announcement, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+announcementColumns+`
		FROM pengumumans ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CountAnnouncements returns the total number of announcements.
func (q *Queries) CountAnnouncements(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pengumumans`).Scan(&count)
	return count, err
}

// GetAnnouncement fetches one announcement by id.
func (q *Queries) GetAnnouncement(ctx context.Context, id int64) (model.Announcement, error) {
	return scanAnnouncement(q.db.QueryRowContext(ctx, `SELECT `+announcementColumns+`
		FROM pengumumans WHERE id = ?`, id))
}

// GetAnnouncementBySlug fetches one announcement by its stored slug.
func (q *Queries) GetAnnouncementBySlug(ctx context.Context, slug string) (model.Announcement, error) {
	return scanAnnouncement(q.db.QueryRowContext(ctx, `SELECT `+announcementColumns+`
		FROM pengumumans WHERE slug = ?`, slug))
}

// CreateAnnouncementParams holds the insertable columns of an announcement.
type CreateAnnouncementParams struct {
	Judul     string
	Slug      string
	Konten    string
	JudulEN   string
	KontenEN  string
	JudulAR   string
	KontenAR  string
	CreatedAt time.Time
}

// CreateAnnouncement inserts an announcement and returns the stored row.
func (q *Queries) CreateAnnouncement(ctx context.Context, arg CreateAnnouncementParams) (model.Announcement, error) {
	if arg.CreatedAt.IsZero() {
		arg.CreatedAt = time.Now()
	}
	res, err := q.db.ExecContext(ctx, `INSERT INTO pengumumans
		(judul, slug, konten, judul_en, konten_en, judul_ar, konten_ar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Judul, arg.Slug, arg.Konten,
		arg.JudulEN, arg.KontenEN, arg.JudulAR, arg.KontenAR,
		arg.CreatedAt, arg.CreatedAt)
	if err != nil {
		return model.Announcement{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Announcement{}, err
	}
	return q.GetAnnouncement(ctx, id)
}

// UpdateAnnouncementParams holds the updatable columns of an announcement.
type UpdateAnnouncementParams struct {
	ID       int64
	Judul    string
	Slug     string
	Konten   string
	JudulEN  string
	KontenEN string
	JudulAR  string
	KontenAR string
}

// UpdateAnnouncement updates an announcement in place.
func (q *Queries) UpdateAnnouncement(ctx context.Context, arg UpdateAnnouncementParams) error {
	_, err := q.db.ExecContext(ctx, `UPDATE pengumumans SET
		judul = ?, slug = ?, konten = ?,
		judul_en = ?, konten_en = ?, judul_ar = ?, konten_ar = ?,
		updated_at = ?
		WHERE id = ?`,
		arg.Judul, arg.Slug, arg.Konten,
		arg.JudulEN, arg.KontenEN, arg.JudulAR, arg.KontenAR,
		time.Now(), arg.ID)
	return err
}

// DeleteAnnouncement hard-deletes an announcement.
func (q *Queries) DeleteAnnouncement(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM pengumumans WHERE id = ?`, id)
	return err
}
