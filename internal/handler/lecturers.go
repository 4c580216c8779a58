// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/middleware"
	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
)

// LecturerView is the public directory view of a faculty member.
type LecturerView struct {
	ID         int64  `json:"id"`
	Nama       string `json:"nama"`
	NIDN       string `json:"nidn,omitempty"`
	Jabatan    string `json:"jabatan"`
	Bidang     string `json:"bidang"`
	Pendidikan string `json:"pendidikan,omitempty"`
	Email      string `json:"email,omitempty"`
	Foto       string `json:"foto,omitempty"`
}

// ListLecturers returns the public, localized faculty directory. The
// directory is small and unpaginated.
func (h *Handler) ListLecturers(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	items, err := h.queries.ListLecturers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list lecturers")
		return
	}

	views := make([]LecturerView, 0, len(items))
	for i := range items {
		l := &items[i]
		views = append(views, LecturerView{
			ID:         l.ID,
			Nama:       l.Nama,
			NIDN:       l.NIDN,
			Jabatan:    locale.ResolveField(l, locale.FieldJabatan, lang, nil, ""),
			Bidang:     locale.ResolveField(l, locale.FieldBidang, lang, nil, ""),
			Pendidikan: l.Pendidikan,
			Email:      l.Email,
			Foto:       l.Foto,
		})
	}
	WriteSuccess(w, LocalizedList{Lang: lang, Dir: lang.Direction(), Items: views}, nil)
}

// LecturerInput is the admin create/update body for a lecturer.
type LecturerInput struct {
	Nama       string `json:"nama"`
	NIDN       string `json:"nidn"`
	Jabatan    string `json:"jabatan"`
	Bidang     string `json:"bidang"`
	Pendidikan string `json:"pendidikan"`
	Email      string `json:"email"`
	Foto       string `json:"foto"`
	JabatanEN  string `json:"jabatan_en"`
	JabatanAR  string `json:"jabatan_ar"`
	BidangEN   string `json:"bidang_en"`
	BidangAR   string `json:"bidang_ar"`
}

func (in *LecturerInput) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(in.Nama) == "" {
		fieldErrors["nama"] = "Nama is required"
	}
	if strings.TrimSpace(in.Jabatan) == "" {
		fieldErrors["jabatan"] = "Jabatan is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// AdminListLecturers returns raw lecturer rows for the admin panel.
func (h *Handler) AdminListLecturers(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListLecturers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list lecturers")
		return
	}
	WriteSuccess(w, items, nil)
}

// AdminGetLecturer returns one raw lecturer row.
func (h *Handler) AdminGetLecturer(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "dosen", func(id int64) (model.Lecturer, error) {
		return h.queries.GetLecturer(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, item, nil)
}

// CreateLecturer creates a lecturer.
func (h *Handler) CreateLecturer(w http.ResponseWriter, r *http.Request) {
	var in LecturerInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateLecturer(r.Context(), store.CreateLecturerParams{
		Nama:       in.Nama,
		NIDN:       in.NIDN,
		Jabatan:    in.Jabatan,
		Bidang:     in.Bidang,
		Pendidikan: in.Pendidikan,
		Email:      in.Email,
		Foto:       in.Foto,
		JabatanEN:  in.JabatanEN,
		JabatanAR:  in.JabatanAR,
		BidangEN:   in.BidangEN,
		BidangAR:   in.BidangAR,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create dosen")
		return
	}
	h.logger.Info("dosen created", "category", "content",
		"id", item.ID, "nama", item.Nama)
	WriteCreated(w, item)
}

// UpdateLecturer updates a lecturer in place.
func (h *Handler) UpdateLecturer(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "dosen", func(id int64) (model.Lecturer, error) {
		return h.queries.GetLecturer(r.Context(), id)
	})
	if !ok {
		return
	}

	var in LecturerInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	err := h.queries.UpdateLecturer(r.Context(), store.UpdateLecturerParams{
		ID:         existing.ID,
		Nama:       in.Nama,
		NIDN:       in.NIDN,
		Jabatan:    in.Jabatan,
		Bidang:     in.Bidang,
		Pendidikan: in.Pendidikan,
		Email:      in.Email,
		Foto:       in.Foto,
		JabatanEN:  in.JabatanEN,
		JabatanAR:  in.JabatanAR,
		BidangEN:   in.BidangEN,
		BidangAR:   in.BidangAR,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update dosen")
		return
	}

	item, err := h.queries.GetLecturer(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve dosen")
		return
	}
	WriteSuccess(w, item, nil)
}

// DeleteLecturer hard-deletes a lecturer.
func (h *Handler) DeleteLecturer(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "dosen", func(id int64) (model.Lecturer, error) {
		return h.queries.GetLecturer(r.Context(), id)
	})
	if !ok {
		return
	}
	if err := h.queries.DeleteLecturer(r.Context(), item.ID); err != nil {
		WriteInternalError(w, "Failed to delete dosen")
		return
	}
	h.logger.Info("dosen deleted", "category", "content", "id", item.ID)
	WriteSuccess(w, map[string]string{"status": "deleted"}, nil)
}

// TranslateLecturer runs the translation assist over one lecturer's
// position and field of study. A partial run is returned unapplied;
// translations are persisted only when every pair succeeded.
func (h *Handler) TranslateLecturer(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "dosen", func(id int64) (model.Lecturer, error) {
		return h.queries.GetLecturer(r.Context(), id)
	})
	if !ok {
		return
	}

	result := h.translator.TranslateFields(r.Context(), item.TranslatableFields(), locale.TargetLangs)
	if len(result.Failures) > 0 {
		h.logger.Warn("translation assist incomplete", "category", "translate",
			"entity", "dosen", "id", item.ID,
			"updated", len(result.Updated), "failed", len(result.Failures))
		WriteSuccess(w, TranslateAssistResponse{FieldsResult: result}, nil)
		return
	}
	item.ApplyTranslations(result.Updated)

	applied := len(result.Updated) > 0
	if applied {
		err := h.queries.UpdateLecturer(r.Context(), store.UpdateLecturerParams{
			ID:         item.ID,
			Nama:       item.Nama,
			NIDN:       item.NIDN,
			Jabatan:    item.Jabatan,
			Bidang:     item.Bidang,
			Pendidikan: item.Pendidikan,
			Email:      item.Email,
			Foto:       item.Foto,
			JabatanEN:  item.JabatanEN,
			JabatanAR:  item.JabatanAR,
			BidangEN:   item.BidangEN,
			BidangAR:   item.BidangAR,
		})
		if err != nil {
			WriteInternalError(w, "Failed to save translations")
			return
		}
	}

	h.logger.Info("translation assist ran", "category", "translate",
		"entity", "dosen", "id", item.ID, "updated", len(result.Updated))
	WriteSuccess(w, TranslateAssistResponse{FieldsResult: result, Applied: applied}, nil)
}
