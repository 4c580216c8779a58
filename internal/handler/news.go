// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/middleware"
	"github.com/akbarmaulana/sifak-go/internal/model"
	"github.com/akbarmaulana/sifak-go/internal/store"
	"github.com/akbarmaulana/sifak-go/internal/util"
)

// ExcerptLength is the rune length of list-view previews.
const ExcerptLength = 200

// LocalizedList wraps a localized collection with its language and text
// direction so clients can set dir="rtl" for Arabic.
type LocalizedList struct {
	Lang  locale.Lang `json:"lang"`
	Dir   string      `json:"dir"`
	Items any         `json:"items"`
}

// NewsListItem is the public list view of a news article.
type NewsListItem struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Judul     string    `json:"judul"`
	Excerpt   string    `json:"excerpt"`
	Kategori  string    `json:"kategori"`
	Gambar    string    `json:"gambar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsDetail is the public detail view of a news article.
type NewsDetail struct {
	ID        int64       `json:"id"`
	Slug      string      `json:"slug"`
	Judul     string      `json:"judul"`
	Konten    string      `json:"konten"`
	Kategori  string      `json:"kategori"`
	Gambar    string      `json:"gambar,omitempty"`
	Lang      locale.Lang `json:"lang"`
	Dir       string      `json:"dir"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// categoryTables returns the category list converted to the forms the
// field resolver consumes.
func (h *Handler) categoryTables(r *http.Request) (map[int64]locale.Record, error) {
	all, err := h.categories.All(r.Context())
	if err != nil {
		return nil, err
	}
	return model.LookupTable(all), nil
}

func newsListItem(n *model.News, lang locale.Lang, categories map[int64]locale.Record) NewsListItem {
	category := categories[n.CategoryID()]
	return NewsListItem{
		ID:        n.ID,
		Slug:      n.PublicSlug(),
		Judul:     locale.ResolveField(n, locale.FieldJudul, lang, category, ""),
		Excerpt:   locale.Excerpt(locale.ResolveField(n, locale.FieldKonten, lang, category, ""), ExcerptLength),
		Kategori:  locale.ResolveCategoryName(n, lang, categories),
		Gambar:    n.Gambar,
		CreatedAt: n.CreatedAt,
	}
}

// ListNews returns the public, localized news list. An optional kategori
// query parameter filters by category id.
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r)

	categories, err := h.categoryTables(r)
	if err != nil {
		WriteInternalError(w, "Failed to load categories")
		return
	}

	var items []model.News
	if raw := r.URL.Query().Get("kategori"); raw != "" {
		kategoriID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || kategoriID < 1 {
			WriteBadRequest(w, "Invalid kategori filter", nil)
			return
		}
		items, err = h.queries.ListNewsByCategory(r.Context(), store.ListNewsByCategoryParams{
			KategoriID: kategoriID,
			Limit:      int64(perPage),
			Offset:     int64((page - 1) * perPage),
		})
		if err != nil {
			WriteInternalError(w, "Failed to list news")
			return
		}
	} else {
		items, err = h.queries.ListNews(r.Context(), store.ListNewsParams{
			Limit:  int64(perPage),
			Offset: int64((page - 1) * perPage),
		})
		if err != nil {
			WriteInternalError(w, "Failed to list news")
			return
		}
	}

	total, err := h.queries.CountNews(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to count news")
		return
	}

	views := make([]NewsListItem, 0, len(items))
	for i := range items {
		views = append(views, newsListItem(&items[i], lang, categories))
	}
	WriteSuccess(w, LocalizedList{Lang: lang, Dir: lang.Direction(), Items: views},
		pageMeta(total, page, perPage))
}

// GetNewsBySlug returns one article by its public slug-id identifier.
// Only the trailing id segment is authoritative; the slug part may be
// stale after a title edit and still resolves.
func (h *Handler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	id, ok := util.IDFromSlug(chi.URLParam(r, "slug"))
	if !ok {
		WriteNotFound(w, "berita not found")
		return
	}
	item, err := h.queries.GetNews(r.Context(), id)
	if err != nil {
		WriteNotFound(w, "berita not found")
		return
	}

	categories, err := h.categoryTables(r)
	if err != nil {
		WriteInternalError(w, "Failed to load categories")
		return
	}
	category := categories[item.CategoryID()]

	WriteSuccess(w, NewsDetail{
		ID:        item.ID,
		Slug:      item.PublicSlug(),
		Judul:     locale.ResolveField(&item, locale.FieldJudul, lang, category, ""),
		Konten:    locale.ResolveField(&item, locale.FieldKonten, lang, category, ""),
		Kategori:  locale.ResolveCategoryName(&item, lang, categories),
		Gambar:    item.Gambar,
		Lang:      lang,
		Dir:       lang.Direction(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil)
}

// NewsInput is the admin create/update body for a news article.
type NewsInput struct {
	Judul      string `json:"judul"`
	Konten     string `json:"konten"`
	Gambar     string `json:"gambar"`
	KategoriID *int64 `json:"kategori_id"`
	JudulEN    string `json:"judul_en"`
	KontenEN   string `json:"konten_en"`
	JudulAR    string `json:"judul_ar"`
	KontenAR   string `json:"konten_ar"`
}

func (in *NewsInput) validate() map[string]string {
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

// resolveCategoryColumns returns the category relation id plus the
// legacy inline name copies kept in sync on every write.
func (h *Handler) resolveCategoryColumns(r *http.Request, kategoriID *int64) (id int64, names model.Category, ok bool) {
	if kategoriID == nil {
		return 0, model.Category{}, true
	}
	cat, found, err := h.categories.Get(r.Context(), *kategoriID)
	if err != nil || !found {
		return 0, model.Category{}, false
	}
	return cat.ID, cat, true
}

// AdminListNews returns raw news rows for the admin panel.
func (h *Handler) AdminListNews(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r)

	items, err := h.queries.ListNews(r.Context(), store.ListNewsParams{
		Limit:  int64(perPage),
		Offset: int64((page - 1) * perPage),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list news")
		return
	}
	total, err := h.queries.CountNews(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to count news")
		return
	}
	WriteSuccess(w, items, pageMeta(total, page, perPage))
}

// AdminGetNews returns one raw news row.
func (h *Handler) AdminGetNews(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "berita", func(id int64) (model.News, error) {
		return h.queries.GetNews(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, item, nil)
}

// CreateNews creates a news article.
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var in NewsInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	kategoriID, names, ok := h.resolveCategoryColumns(r, in.KategoriID)
	if !ok {
		WriteValidationError(w, map[string]string{"kategori_id": "Unknown category"})
		return
	}

	var authorID int64
	if user := middleware.GetUser(r); user != nil {
		authorID = user.ID
	}

	item, err := h.queries.CreateNews(r.Context(), store.CreateNewsParams{
		Judul:      in.Judul,
		Slug:       util.Slugify(in.Judul),
		Konten:     locale.SanitizeMarkup(in.Konten),
		Gambar:     in.Gambar,
		KategoriID: util.NullInt64FromValue(kategoriID),
		Kategori:   names.Kategori,
		KategoriEN: names.KategoriEN,
		KategoriAR: names.KategoriAR,
		JudulEN:    in.JudulEN,
		KontenEN:   locale.SanitizeMarkup(in.KontenEN),
		JudulAR:    in.JudulAR,
		KontenAR:   locale.SanitizeMarkup(in.KontenAR),
		AuthorID:   util.NullInt64FromValue(authorID),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create berita")
		return
	}
	h.logger.Info("berita created", "category", "content",
		"id", item.ID, "judul", item.Judul)
	WriteCreated(w, item)
}

// UpdateNews updates a news article in place.
func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "berita", func(id int64) (model.News, error) {
		return h.queries.GetNews(r.Context(), id)
	})
	if !ok {
		return
	}

	var in NewsInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	kategoriID, names, ok := h.resolveCategoryColumns(r, in.KategoriID)
	if !ok {
		WriteValidationError(w, map[string]string{"kategori_id": "Unknown category"})
		return
	}

	err := h.queries.UpdateNews(r.Context(), store.UpdateNewsParams{
		ID:         existing.ID,
		Judul:      in.Judul,
		Slug:       util.Slugify(in.Judul),
		Konten:     locale.SanitizeMarkup(in.Konten),
		Gambar:     in.Gambar,
		KategoriID: util.NullInt64FromValue(kategoriID),
		Kategori:   names.Kategori,
		KategoriEN: names.KategoriEN,
		KategoriAR: names.KategoriAR,
		JudulEN:    in.JudulEN,
		KontenEN:   locale.SanitizeMarkup(in.KontenEN),
		JudulAR:    in.JudulAR,
		KontenAR:   locale.SanitizeMarkup(in.KontenAR),
	})
	if err != nil {
		WriteInternalError(w, "Failed to update berita")
		return
	}

	item, err := h.queries.GetNews(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve berita")
		return
	}
	WriteSuccess(w, item, nil)
}

// DeleteNews hard-deletes a news article.
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "berita", func(id int64) (model.News, error) {
		return h.queries.GetNews(r.Context(), id)
	})
	if !ok {
		return
	}
	if err := h.queries.DeleteNews(r.Context(), item.ID); err != nil {
		WriteInternalError(w, "Failed to delete berita")
		return
	}
	h.logger.Info("berita deleted", "category", "content", "id", item.ID)
	WriteSuccess(w, map[string]string{"status": "deleted"}, nil)
}

// TranslateNews runs the translation assist over one article's base
// fields. Translations are persisted only when every (field, language)
// pair succeeded; a partial run is returned unapplied so the editor can
// review the failures and decide what to save.
func (h *Handler) TranslateNews(w http.ResponseWriter, r *http.Request) {
	item, ok := requireEntityByID(w, r, "berita", func(id int64) (model.News, error) {
		return h.queries.GetNews(r.Context(), id)
	})
	if !ok {
		return
	}

	result := h.translator.TranslateFields(r.Context(), item.TranslatableFields(), locale.TargetLangs)
	if len(result.Failures) > 0 {
		h.logger.Warn("translation assist incomplete", "category", "translate",
			"entity", "berita", "id", item.ID,
			"updated", len(result.Updated), "failed", len(result.Failures))
		WriteSuccess(w, TranslateAssistResponse{FieldsResult: result}, nil)
		return
	}
	item.ApplyTranslations(result.Updated)

	applied := len(result.Updated) > 0
	if applied {
		err := h.queries.UpdateNews(r.Context(), store.UpdateNewsParams{
			ID:         item.ID,
			Judul:      item.Judul,
			Slug:       item.Slug,
			Konten:     item.Konten,
			Gambar:     item.Gambar,
			KategoriID: item.KategoriID,
			Kategori:   item.Kategori,
			KategoriEN: item.KategoriEN,
			KategoriAR: item.KategoriAR,
			JudulEN:    item.JudulEN,
			KontenEN:   item.KontenEN,
			JudulAR:    item.JudulAR,
			KontenAR:   item.KontenAR,
		})
		if err != nil {
			WriteInternalError(w, "Failed to save translations")
			return
		}
	}

	h.logger.Info("translation assist ran", "category", "translate",
		"entity", "berita", "id", item.ID, "updated", len(result.Updated))
	WriteSuccess(w, TranslateAssistResponse{FieldsResult: result, Applied: applied}, nil)
}
