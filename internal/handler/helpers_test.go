// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/akbarmaulana/sifak-go/internal/auth"
	"github.com/akbarmaulana/sifak-go/internal/cache"
	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
	"github.com/akbarmaulana/sifak-go/internal/translate"
	"github.com/akbarmaulana/sifak-go/internal/util"
)

// scriptedProvider is a canned translation provider for handler tests.
type scriptedProvider struct {
	name string
	text string
	err  error
}

func (s *scriptedProvider) Name() string { return s.name }

func (s *scriptedProvider) Translate(_ context.Context, text string, _ locale.Lang) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.text != "" {
		return s.text, nil
	}
	return "[tr] " + text, nil
}

// langBoundProvider serves only the listed target languages and fails
// the rest, for exercising partial translate-assist runs.
type langBoundProvider struct {
	name  string
	serve map[locale.Lang]bool
}

func (p *langBoundProvider) Name() string { return p.name }

func (p *langBoundProvider) Translate(_ context.Context, text string, lang locale.Lang) (string, error) {
	if !p.serve[lang] {
		return "", errors.New("service unavailable")
	}
	return "[" + string(lang) + "] " + text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHandler builds a Handler over a fresh temp-file database with a
// scripted translator and no object storage.
func newTestHandler(t *testing.T, providers ...translate.Provider) (*Handler, *store.Queries) {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))

	if len(providers) == 0 {
		providers = []translate.Provider{&scriptedProvider{name: "Scripted"}}
	}
	translator := translate.New("", testLogger(), translate.WithProviders(providers...))

	queries := store.New(db)
	h := NewHandler(db, cache.NewCategoryCache(queries), translator, nil,
		scs.New(), testLogger())
	return h, queries
}

func seedCategory(t *testing.T, q *store.Queries, kategori, en, ar string) model.Category {
	t.Helper()
	cat, err := q.CreateCategory(context.Background(), store.CreateCategoryParams{
		Kategori: kategori, KategoriEN: en, KategoriAR: ar,
	})
	require.NoError(t, err)
	return cat
}

func seedNews(t *testing.T, q *store.Queries, arg store.CreateNewsParams) model.News {
	t.Helper()
	if arg.Slug == "" && arg.Judul != "" {
		arg.Slug = "artikel"
	}
	item, err := q.CreateNews(context.Background(), arg)
	require.NoError(t, err)
	return item
}

func seedUser(t *testing.T, q *store.Queries, email, password, role string) model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := q.CreateUser(context.Background(), store.CreateUserParams{
		Email: email, PasswordHash: hash, Name: "Test User", Role: role,
	})
	require.NoError(t, err)
	return user
}

// withRouteParam attaches a chi route parameter to a request.
func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serveSession runs fn inside the session middleware so handlers that
// touch the session have a loaded context.
func serveSession(sm *scs.SessionManager, fn http.HandlerFunc) http.Handler {
	return sm.LoadAndSave(fn)
}

func readerFor(s string) io.Reader { return strings.NewReader(s) }

func nullID(id int64) sql.NullInt64 { return util.NullInt64FromValue(id) }

func doRequest(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}
