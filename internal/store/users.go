// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/model"
)

const userColumns = `id, email, password_hash, name, role, created_at, updated_at, last_login_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	return u, err
}

// GetUser fetches one user by id.
func (q *Queries) GetUser(ctx context.Context, id int64) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, `SELECT `+userColumns+`
		FROM users WHERE id = ?`, id))
}

// GetUserByEmail fetches one user by email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, `SELECT `+userColumns+`
		FROM users WHERE email = ?`, email))
}

// ListUsers returns all users ordered by email.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+userColumns+`
		FROM users ORDER BY email ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// CreateUserParams holds the insertable columns of a user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

// CreateUser inserts a user and returns the stored row.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	if arg.Role == "" {
		arg.Role = model.RoleEditor
	}
	now := time.Now()
	res, err := q.db.ExecContext(ctx, `INSERT INTO users
		(email, password_hash, name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Email, arg.PasswordHash, arg.Name, arg.Role, now, now)
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return q.GetUser(ctx, id)
}

// TouchUserLogin records a successful login.
func (q *Queries) TouchUserLogin(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`,
		time.Now(), id)
	return err
}

// DeleteUser hard-deletes a user.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}
