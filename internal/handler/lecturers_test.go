// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
)

func seedLecturer(t *testing.T, q *store.Queries, arg store.CreateLecturerParams) model.Lecturer {
	t.Helper()
	item, err := q.CreateLecturer(context.Background(), arg)
	require.NoError(t, err)
	return item
}

func TestListLecturersLocalized(t *testing.T) {
	h, q := newTestHandler(t)
	seedLecturer(t, q, store.CreateLecturerParams{
		Nama:      "Dr. Ahmad Fauzi",
		NIDN:      "0012345678",
		Jabatan:   "Dekan",
		Bidang:    "Hukum Islam",
		JabatanEN: "Dean",
		// No bidang_en: English view falls back to the base value.
	})

	r := httptest.NewRequest(http.MethodGet, "/api/dosen?lang=en", nil)
	w := doRequest(servePublic(h.ListLecturers), r)
	require.Equal(t, http.StatusOK, w.Code)

	_, _, items, _ := decodeList(t, w.Body.Bytes())
	require.Len(t, items, 1)
	assert.Equal(t, "Dr. Ahmad Fauzi", items[0]["nama"])
	assert.Equal(t, "Dean", items[0]["jabatan"])
	assert.Equal(t, "Hukum Islam", items[0]["bidang"])
}

func TestLecturerCRUD(t *testing.T) {
	h, q := newTestHandler(t)

	t.Run("validation", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/admin/dosen", readerFor(`{"nama":""}`))
		w := httptest.NewRecorder()
		h.CreateLecturer(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	body := `{"nama":"Dr. Siti Rahma","jabatan":"Wakil Dekan","bidang":"Ekonomi Syariah"}`
	r := httptest.NewRequest(http.MethodPost, "/api/admin/dosen", readerFor(body))
	w := httptest.NewRecorder()
	h.CreateLecturer(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	update := `{"nama":"Dr. Siti Rahma","jabatan":"Dekan","bidang":"Ekonomi Syariah"}`
	ur := withRouteParam(httptest.NewRequest(http.MethodPut, "/api/admin/dosen/1", readerFor(update)), "id", "1")
	uw := httptest.NewRecorder()
	h.UpdateLecturer(uw, ur)
	require.Equal(t, http.StatusOK, uw.Code)

	stored, err := q.GetLecturer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dekan", stored.Jabatan)

	dr := withRouteParam(httptest.NewRequest(http.MethodDelete, "/api/admin/dosen/1", nil), "id", "1")
	dw := httptest.NewRecorder()
	h.DeleteLecturer(dw, dr)
	require.Equal(t, http.StatusOK, dw.Code)

	_, err = q.GetLecturer(context.Background(), 1)
	assert.Error(t, err)
}

func TestTranslateLecturer(t *testing.T) {
	h, q := newTestHandler(t)
	seedLecturer(t, q, store.CreateLecturerParams{
		Nama: "Dr. Ahmad Fauzi", Jabatan: "Dekan", Bidang: "Hukum Islam",
	})

	r := withRouteParam(httptest.NewRequest(http.MethodPost, "/api/admin/dosen/1/translate", nil), "id", "1")
	w := httptest.NewRecorder()
	h.TranslateLecturer(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := q.GetLecturer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "[tr] Dekan", stored.JabatanEN)
	assert.Equal(t, "[tr] Hukum Islam", stored.BidangAR)
	assert.Equal(t, "Dekan", stored.Jabatan)
}
