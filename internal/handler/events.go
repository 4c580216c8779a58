// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
)

// Event listing bounds.
const (
	DefaultEventLimit = 50
	MaxEventLimit     = 500
)

// ListEvents returns recent event-log entries, newest first. Admin only.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}

	events, err := h.queries.ListRecentEvents(r.Context(), int64(limit))
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}
	WriteSuccess(w, events, nil)
}
