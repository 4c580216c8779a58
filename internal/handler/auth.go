// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/akbarmaulana/sifak-go/internal/auth"
	"github.com/akbarmaulana/sifak-go/internal/middleware"
)

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin-panel account and starts a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		WriteValidationError(w, map[string]string{
			"email":    "Email is required",
			"password": "Password is required",
		})
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same response as a wrong password so the endpoint does
			// not leak which accounts exist.
			WriteUnauthorized(w, "Invalid email or password")
			return
		}
		WriteInternalError(w, "Failed to look up account")
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.logger.Warn("failed login attempt",
			"category", "auth", "email", req.Email)
		WriteUnauthorized(w, "Invalid email or password")
		return
	}

	// New token on privilege change, standard session-fixation defense.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		WriteInternalError(w, "Failed to start session")
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	if err := h.queries.TouchUserLogin(r.Context(), user.ID); err != nil {
		h.logger.Error("record login time", "category", "auth", "error", err)
	}

	h.logger.Info("user logged in", "category", "auth",
		"user_id", user.ID, "email", user.Email)
	WriteSuccess(w, user, nil)
}

// Logout destroys the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "Failed to end session")
		return
	}
	if user != nil {
		h.logger.Info("user logged out", "category", "auth", "user_id", user.ID)
	}
	WriteSuccess(w, map[string]string{"status": "logged_out"}, nil)
}

// Me returns the authenticated account.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, user, nil)
}
