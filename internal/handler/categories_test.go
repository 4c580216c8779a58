// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

func TestListCategoriesLocalized(t *testing.T) {
	h, q := newTestHandler(t)
	seedCategory(t, q, "Umum", "General", "عام")
	seedCategory(t, q, "Pendidikan", "", "")

	r := httptest.NewRequest(http.MethodGet, "/api/kategori?lang=en", nil)
	w := doRequest(servePublic(h.ListCategories), r)
	require.Equal(t, http.StatusOK, w.Code)

	_, _, items, _ := decodeList(t, w.Body.Bytes())
	require.Len(t, items, 2)
	assert.Equal(t, "General", items[0]["name"])
	// Missing English name falls back to the base value.
	assert.Equal(t, "Pendidikan", items[1]["name"])
}

func TestCategoryWritesInvalidateCache(t *testing.T) {
	h, q := newTestHandler(t)
	seedCategory(t, q, "Umum", "General", "عام")

	// Warm the cache.
	r := httptest.NewRequest(http.MethodGet, "/api/kategori", nil)
	w := doRequest(servePublic(h.ListCategories), r)
	require.Equal(t, http.StatusOK, w.Code)

	// A create through the handler must show up on the next read.
	cr := httptest.NewRequest(http.MethodPost, "/api/admin/kategori",
		readerFor(`{"kategori":"Hukum","kategori_en":"Law","kategori_ar":"قانون"}`))
	cw := httptest.NewRecorder()
	h.CreateCategory(cw, cr)
	require.Equal(t, http.StatusCreated, cw.Code)

	r = httptest.NewRequest(http.MethodGet, "/api/kategori", nil)
	w = doRequest(servePublic(h.ListCategories), r)
	require.Equal(t, http.StatusOK, w.Code)
	_, _, items, _ := decodeList(t, w.Body.Bytes())
	assert.Len(t, items, 2)

	// Update is visible too.
	ur := withRouteParam(httptest.NewRequest(http.MethodPut, "/api/admin/kategori/2",
		readerFor(`{"kategori":"Hukum Pidana"}`)), "id", "2")
	uw := httptest.NewRecorder()
	h.UpdateCategory(uw, ur)
	require.Equal(t, http.StatusOK, uw.Code)

	r = httptest.NewRequest(http.MethodGet, "/api/kategori", nil)
	w = doRequest(servePublic(h.ListCategories), r)
	_, _, items, _ = decodeList(t, w.Body.Bytes())
	assert.Equal(t, "Hukum Pidana", items[1]["name"])
}

func TestCategoryValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/kategori", readerFor(`{"kategori":"  "}`))
	w := httptest.NewRecorder()
	h.CreateCategory(w, r)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTranslateCategoryAllPairsSucceedPersists(t *testing.T) {
	h, q := newTestHandler(t) // default provider prefixes "[tr] "
	item := seedCategory(t, q, "Kemahasiswaan", "", "")

	r := withRouteParam(httptest.NewRequest(http.MethodPost, "/api/admin/kategori/1/translate", nil), "id", "1")
	w := httptest.NewRecorder()
	h.TranslateCategory(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data TranslateAssistResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Applied)

	stored, err := q.GetCategory(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "[tr] Kemahasiswaan", stored.KategoriEN)
	assert.Equal(t, "[tr] Kemahasiswaan", stored.KategoriAR)
}

func TestTranslateCategoryPartialFailureNotPersisted(t *testing.T) {
	// Arabic fails: the run reports the failure and writes nothing, so
	// the editor decides what to keep.
	h, q := newTestHandler(t, &langBoundProvider{
		name:  "Scripted",
		serve: map[locale.Lang]bool{locale.LangEN: true},
	})
	item := seedCategory(t, q, "Kemahasiswaan", "", "")

	r := withRouteParam(httptest.NewRequest(http.MethodPost, "/api/admin/kategori/1/translate", nil), "id", "1")
	w := httptest.NewRecorder()
	h.TranslateCategory(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data TranslateAssistResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Applied)
	require.Len(t, resp.Data.Failures, 1)
	assert.Equal(t, "kategori", resp.Data.Failures[0].Field)
	assert.Equal(t, locale.LangAR, resp.Data.Failures[0].Lang)
	assert.Equal(t, "[en] Kemahasiswaan", resp.Data.Updated["kategori_en"])

	stored, err := q.GetCategory(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.KategoriEN)
	assert.Empty(t, stored.KategoriAR)
}
