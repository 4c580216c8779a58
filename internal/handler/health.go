// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/akbarmaulana/sifak-go/internal/version"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health reports liveness plus database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "degraded",
			Version: version.Version,
		})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
