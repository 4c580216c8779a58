// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
)

const lecturerColumns = `id, nama, nidn, jabatan, bidang, pendidikan, email, foto,
	jabatan_en, jabatan_ar, bidang_en, bidang_ar,
	created_at, updated_at`

func scanLecturer(row interface{ Scan(...any) error }) (model.Lecturer, error) {
	var l model.Lecturer
	err := row.Scan(
		&l.ID, &l.Nama, &l.NIDN, &l.Jabatan, &l.Bidang, &l.Pendidikan, &l.Email, &l.Foto,
		&l.JabatanEN, &l.JabatanAR, &l.BidangEN, &l.BidangAR,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// ListLecturers returns all lecturers ordered by name, for the public
// directory.
func (q *Queries) ListLecturers(ctx context.Context) ([]model.Lecturer, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+lecturerColumns+`
		FROM dosens ORDER BY nama ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Lecturer
	for rows.Next() {
		l, err := scanLecturer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// GetLecturer fetches one lecturer by id.
func (q *Queries) GetLecturer(ctx context.Context, id int64) (model.Lecturer, error) {
	return scanLecturer(q.db.QueryRowContext(ctx, `SELECT `+lecturerColumns+`
		FROM dosens WHERE id = ?`, id))
}

// CreateLecturerParams holds the insertable columns of a lecturer.
type CreateLecturerParams struct {
	Nama       string
	NIDN       string
	Jabatan    string
	Bidang     string
	Pendidikan string
	Email      string
	Foto       string
	JabatanEN  string
	JabatanAR  string
	BidangEN   string
	BidangAR   string
}

// CreateLecturer inserts a lecturer and returns the stored row.
func (q *Queries) CreateLecturer(ctx context.Context, arg CreateLecturerParams) (model.Lecturer, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx, `INSERT INTO dosens
		(nama, nidn, jabatan, bidang, pendidikan, email, foto,
		 jabatan_en, jabatan_ar, bidang_en, bidang_ar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Nama, arg.NIDN, arg.Jabatan, arg.Bidang, arg.Pendidikan, arg.Email, arg.Foto,
		arg.JabatanEN, arg.JabatanAR, arg.BidangEN, arg.BidangAR, now, now)
	if err != nil {
		return model.Lecturer{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Lecturer{}, err
	}
	return q.GetLecturer(ctx, id)
}

// UpdateLecturerParams holds the updatable columns of a lecturer.
type UpdateLecturerParams struct {
	ID         int64
	Nama       string
	NIDN       string
	Jabatan    string
	Bidang     string
	Pendidikan string
	Email      string
	Foto       string
	JabatanEN  string
	JabatanAR  string
	BidangEN   string
	BidangAR   string
}

// UpdateLecturer updates a lecturer in place.
func (q *Queries) UpdateLecturer(ctx context.Context, arg UpdateLecturerParams) error {
	_, err := q.db.ExecContext(ctx, `UPDATE dosens SET
		nama = ?, nidn = ?, jabatan = ?, bidang = ?, pendidikan = ?, email = ?, foto = ?,
		jabatan_en = ?, jabatan_ar = ?, bidang_en = ?, bidang_ar = ?, updated_at = ?
		WHERE id = ?`,
		arg.Nama, arg.NIDN, arg.Jabatan, arg.Bidang, arg.Pendidikan, arg.Email, arg.Foto,
		arg.JabatanEN, arg.JabatanAR, arg.BidangEN, arg.BidangAR, time.Now(), arg.ID)
	return err
}

// DeleteLecturer hard-deletes a lecturer.
func (q *Queries) DeleteLecturer(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM dosens WHERE id = ?`, id)
	return err
}
