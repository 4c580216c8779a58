// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
)

func newTestRouter(t *testing.T) (http.Handler, *store.Queries) {
	t.Helper()
	h, q := newTestHandler(t)
	router := h.Routes(RouterOptions{
		IsDevelopment: true,
		SessionSecret: "0123456789abcdef0123456789abcdef",
	})
	return router, q
}

func TestRouterPublicRoutes(t *testing.T) {
	router, q := newTestRouter(t)
	seedNews(t, q, store.CreateNewsParams{
		Judul: "Berita Pertama", Slug: "berita-pertama", Konten: "Isi",
	})

	tests := []struct {
		path string
	}{
		{"/health"},
		{"/api/berita"},
		{"/api/pengumuman"},
		{"/api/dosen"},
		{"/api/kategori"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.path, nil)
		w := doRequest(router, r)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", tt.path)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/berita/berita-pertama-1", nil)
	w := doRequest(router, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterAdminRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/berita/"},
		{http.MethodPost, "/api/admin/berita/"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/translate"},
		{http.MethodGet, "/api/admin/events"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(tt.method, tt.path, readerFor(`{}`))
		w := doRequest(router, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouterLoginThenAdminAccess(t *testing.T) {
	router, q := newTestRouter(t)
	seedUser(t, q, "admin@kampus.ac.id", "rahasia-sekali", model.RoleAdmin)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		readerFor(`{"email":"admin@kampus.ac.id","password":"rahasia-sekali"}`))
	login.Header.Set("Content-Type", "application/json")
	lw := doRequest(router, login)
	require.Equal(t, http.StatusOK, lw.Code)
	cookies := lw.Result().Cookies()
	require.NotEmpty(t, cookies)

	me := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		me.AddCookie(c)
	}
	mw := doRequest(router, me)
	assert.Equal(t, http.StatusOK, mw.Code)

	events := httptest.NewRequest(http.MethodGet, "/api/admin/events", nil)
	for _, c := range cookies {
		events.AddCookie(c)
	}
	ew := doRequest(router, events)
	assert.Equal(t, http.StatusOK, ew.Code)
}

func TestRouterEditorCannotReadEvents(t *testing.T) {
	router, q := newTestRouter(t)
	seedUser(t, q, "editor@kampus.ac.id", "rahasia-sekali", model.RoleEditor)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		readerFor(`{"email":"editor@kampus.ac.id","password":"rahasia-sekali"}`))
	lw := doRequest(router, login)
	require.Equal(t, http.StatusOK, lw.Code)

	events := httptest.NewRequest(http.MethodGet, "/api/admin/events", nil)
	for _, c := range lw.Result().Cookies() {
		events.AddCookie(c)
	}
	ew := doRequest(router, events)
	assert.Equal(t, http.StatusForbidden, ew.Code)
}

func TestRouterSecurityHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := doRequest(router, r)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
