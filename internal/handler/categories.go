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

// CategoryView is the public localized view of a category.
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListCategories returns the localized category dictionary, served from
// the category cache.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	all, err := h.categories.All(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list categories")
		return
	}

	views := make([]CategoryView, 0, len(all))
	for i := range all {
		c := &all[i]
		views = append(views, CategoryView{
			ID:   c.ID,
			Name: locale.ResolveField(c, locale.FieldKategori, lang, nil, locale.DefaultCategoryLabel(lang)),
		})
	}
	WriteSuccess(w, LocalizedList{Lang: lang, Dir: lang.Direction(), Items: views}, nil)
}

// CategoryInput is the admin create/update body for a category.
type CategoryInput struct {
	Kategori   string `json:"kategori"`
	KategoriEN string `json:"kategori_en"`
	KategoriAR string `json:"kategori_ar"`
}

func (in *CategoryInput) validate() map[string]string {
	if strings.TrimSpace(in.Kategori) == "" {
		return map[string]string{"kategori": "Kategori is required"}
	}
	return nil
}

// AdminListCategories returns raw category rows for the admin panel.
func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListCategories(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list categories")
		return
	}
	WriteSuccess(w, items, nil)
}

// CreateCategory creates a category and invalidates the cache.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in CategoryInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateCategory(r.Context(), store.CreateCategoryParams{
		Kategori:   in.Kategori,
		KategoriEN: in.KategoriEN,
		KategoriAR: in.KategoriAR,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create kategori")
		return
	}
	h.categories.Invalidate()
	h.logger.Info("kategori created", "category", "content",
		"id", item.ID, "kategori", item.Kategori)
	WriteCreated(w, item)
}

// UpdateCategory updates a category and invalidates the cache.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "kategori", func(id int64) (model.Category, error) {
		return h.queries.GetCategory(r.Context(), id)
	})
	if !ok {
		return
	}

	var in CategoryInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	err := h.queries.UpdateCategory(r.Context(), store.UpdateCategoryParams{
		ID:         existing.ID,
		Kategori:   in.Kategori,
		KategoriEN: in.KategoriEN,
		KategoriAR: in.KategoriAR,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update kategori")
		return
	}
	h.categories.Invalidate()

	item, err := h.queries.GetCategory(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve kategori")
		return
	}
	WriteSuccess(w, item, nil)
}

// DeleteCategory hard-deletes a category and invalidates the cache.
// News rows referencing it fall back to their legacy inline category
// columns on resolution.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "kategori", func(id int64) (model.Category, error) {
		return h.queries.GetCategory(r.Context(), id)
	})
	if !ok {
		return
	}
	if err := h.queries.DeleteCategory(r.Context(), item.ID); err != nil {
		WriteInternalError(w, "Failed to delete kategori")
		return
	}
	h.categories.Invalidate()
	h.logger.Info("kategori deleted", "category", "content", "id", item.ID)
	WriteSuccess(w, map[string]string{"status": "deleted"}, nil)
}

// TranslateCategory runs the translation assist over one category name.
// A partial run is returned unapplied; translations are persisted only
// when every pair succeeded.
func (h *Handler) TranslateCategory(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "kategori", func(id int64) (model.Category, error) {
		return h.queries.GetCategory(r.Context(), id)
	})
	if !ok {
		return
	}

	result := h.translator.TranslateFields(r.Context(), item.TranslatableFields(), locale.TargetLangs)
	if len(result.Failures) > 0 {
		h.logger.Warn("translation assist incomplete", "category", "translate",
			"entity", "kategori", "id", item.ID,
			"updated", len(result.Updated), "failed", len(result.Failures))
		WriteSuccess(w, TranslateAssistResponse{FieldsResult: result}, nil)
		return
	}
	item.ApplyTranslations(result.Updated)

	applied := len(result.Updated) > 0
	if applied {
		err := h.queries.UpdateCategory(r.Context(), store.UpdateCategoryParams{
			ID:         item.ID,
			Kategori:   item.Kategori,
			KategoriEN: item.KategoriEN,
			KategoriAR: item.KategoriAR,
		})
		if err != nil {
			WriteInternalError(w, "Failed to save translations")
			return
		}
		h.categories.Invalidate()
	}

	h.logger.Info("translation assist ran", "category", "translate",
		"entity", "kategori", "id", item.ID, "updated", len(result.Updated))
	WriteSuccess(w, TranslateAssistResponse{FieldsResult: result, Applied: applied}, nil)
}
