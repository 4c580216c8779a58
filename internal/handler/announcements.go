// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/middleware"
	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
	"github.com/akbarmaulana/sifak-go/internal/util"
)

// AnnouncementListItem is the public list view of an announcement.
type AnnouncementListItem struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Judul     string    `json:"judul"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnouncementDetail is the public detail view of an announcement.
type AnnouncementDetail struct {
	ID        int64       `json:"id"`
	Slug      string      `json:"slug"`
	Judul     string      `json:"judul"`
	Konten    string      `json:"konten"`
	Lang      locale.Lang `json:"lang"`
	Dir       string      `json:"dir"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ListAnnouncements returns the public, localized announcement list.
func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r)

	items, err := h.queries.ListAnnouncements(r.Context(), store.ListAnnouncementsParams{
		Limit:  int64(perPage),
		Offset: int64((page - 1) * perPage),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list announcements")
		return
	}
	total, err := h.queries.CountAnnouncements(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to count announcements")
		return
	}

	views := make([]AnnouncementListItem, 0, len(items))
	for i := range items {
		a := &items[i]
		views = append(views, AnnouncementListItem{
			ID:        a.ID,
			Slug:      a.PublicSlug(),
			Judul:     locale.ResolveField(a, locale.FieldJudul, lang, nil, ""),
			Excerpt:   locale.Excerpt(locale.ResolveField(a, locale.FieldKonten, lang, nil, ""), ExcerptLength),
			CreatedAt: a.CreatedAt,
		})
	}
	WriteSuccess(w, LocalizedList{Lang: lang, Dir: lang.Direction(), Items: views},
		pageMeta(total, page, perPage))
}

// GetAnnouncementBySlug returns one announcement by its public slug-id
// identifier. A plain slug without the id tie-breaker is also accepted,
// kept for links published before the slug-id scheme.
func (h *Handler) GetAnnouncementBySlug(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	slug := chi.URLParam(r, "slug")

	var (
		item model.Announcement
		err  error
	)
	if id, ok := util.IDFromSlug(slug); ok {
		item, err = h.queries.GetAnnouncement(r.Context(), id)
	} else {
		item, err = h.queries.GetAnnouncementBySlug(r.Context(), slug)
	}
	if err != nil {
		WriteNotFound(w, "pengumuman not found")
		return
	}

	WriteSuccess(w, AnnouncementDetail{
		ID:        item.ID,
		Slug:      item.PublicSlug(),
		Judul:     locale.ResolveField(&item, locale.FieldJudul, lang, nil, ""),
		Konten:    locale.ResolveField(&item, locale.FieldKonten, lang, nil, ""),
		Lang:      lang,
		Dir:       lang.Direction(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil)
}

// AnnouncementInput is the admin create/update body for an announcement.
type AnnouncementInput struct {
	Judul    string `json:"judul"`
	Konten   string `json:"konten"`
	JudulEN  string `json:"judul_en"`
	KontenEN string `json:"konten_en"`
	JudulAR  string `json:"judul_ar"`
	KontenAR string `json:"konten_ar"`
}

func (in *AnnouncementInput) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(in.Judul) == "" {
		fieldErrors["judul"] = "Judul is required"
	}
	if strings.TrimSpace(in.Konten) == "" {
		fieldErrors["konten"] = "Konten is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// AdminListAnnouncements returns raw announcement rows for the admin panel.
func (h *Handler) AdminListAnnouncements(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r)

	items, err := h.queries.ListAnnouncements(r.Context(), store.ListAnnouncementsParams{
		Limit:  int64(perPage),
		Offset: int64((page - 1) * perPage),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list announcements")
		return
	}
	total, err := h.queries.CountAnnouncements(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to count announcements")
		return
	}
	WriteSuccess(w, items, pageMeta(total, page, perPage))
}

// AdminGetAnnouncement returns one raw announcement row.
func (h *Handler) AdminGetAnnouncement(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "pengumuman", func(id int64) (model.Announcement, error) {
		return h.queries.GetAnnouncement(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, item, nil)
}

// CreateAnnouncement creates an announcement.
func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in AnnouncementInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateAnnouncement(r.Context(), store.CreateAnnouncementParams{
		Judul:    in.Judul,
		Slug:     util.Slugify(in.Judul),
		Konten:   locale.SanitizeMarkup(in.Konten),
		JudulEN:  in.JudulEN,
		KontenEN: locale.SanitizeMarkup(in.KontenEN),
		JudulAR:  in.JudulAR,
		KontenAR: locale.SanitizeMarkup(in.KontenAR),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create pengumuman")
		return
	}
	h.logger.Info("pengumuman created", "category", "content",
		"id", item.ID, "judul", item.Judul)
	WriteCreated(w, item)
}

// UpdateAnnouncement updates an announcement in place.
func (h *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "pengumuman", func(id int64) (model.Announcement, error) {
		return h.queries.GetAnnouncement(r.Context(), id)
	})
	if !ok {
		return
	}

	var in AnnouncementInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	err := h.queries.UpdateAnnouncement(r.Context(), store.UpdateAnnouncementParams{
		ID:       existing.ID,
		Judul:    in.Judul,
		Slug:     util.Slugify(in.Judul),
		Konten:   locale.SanitizeMarkup(in.Konten),
		JudulEN:  in.JudulEN,
		KontenEN: locale.SanitizeMarkup(in.KontenEN),
		JudulAR:  in.JudulAR,
		KontenAR: locale.SanitizeMarkup(in.KontenAR),
	})
	if err != nil {
		WriteInternalError(w, "Failed to update pengumuman")
		return
	}

	item, err := h.queries.GetAnnouncement(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve pengumuman")
		return
	}
	WriteSuccess(w, item, nil)
}

// DeleteAnnouncement hard-deletes an announcement.
func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "pengumuman", func(id int64) (model.Announcement, error) {
		return h.queries.GetAnnouncement(r.Context(), id)
	})
	if !ok {
		return
	}
	if err := h.queries.DeleteAnnouncement(r.Context(), item.ID); err != nil {
		WriteInternalError(w, "Failed to delete pengumuman")
		return
	}
	h.logger.Info("pengumuman deleted", "category", "content", "id", item.ID)
	WriteSuccess(w, map[string]string{"status": "deleted"}, nil)
}

// TranslateAnnouncement runs the translation assist over one
// announcement. A partial run is returned unapplied; translations are
// persisted only when every pair succeeded.
func (h *Handler) TranslateAnnouncement(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "pengumuman", func(id int64) (model.Announcement, error) {
		return h.queries.GetAnnouncement(r.Context(), id)
	})
	if !ok {
		return
	}

	result := h.translator.TranslateFields(r.Context(), item.TranslatableFields(), locale.TargetLangs)
	if len(result.Failures) > 0 {
		h.logger.Warn("translation assist incomplete", "category", "translate",
			"entity", "pengumuman", "id", item.ID,
			"updated", len(result.Updated), "failed", len(result.Failures))
		WriteSuccess(w, TranslateAssistResponse{FieldsResult: result}, nil)
		return
	}
	item.ApplyTranslations(result.Updated)

	applied := len(result.Updated) > 0
	if applied {
		err := h.queries.UpdateAnnouncement(r.Context(), store.UpdateAnnouncementParams{
			ID:       item.ID,
			Judul:    item.Judul,
			Slug:     item.Slug,
			Konten:   item.Konten,
			JudulEN:  item.JudulEN,
			KontenEN: item.KontenEN,
			JudulAR:  item.JudulAR,
			KontenAR: item.KontenAR,
		})
		if err != nil {
			WriteInternalError(w, "Failed to save translations")
			return
		}
	}

	h.logger.Info("translation assist ran", "category", "translate",
		"entity", "pengumuman", "id", item.ID, "updated", len(result.Updated))
	WriteSuccess(w, TranslateAssistResponse{FieldsResult: result, Applied: applied}, nil)
}
