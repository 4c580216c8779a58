// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package locale

import "strings"

// Record is any content value exposing localized field families.
// LocalizedField returns the raw stored value for one member of a field
// family (base column for LangID, suffixed column otherwise) and the
// empty string when the member does not exist on the record.
type Record interface {
	LocalizedField(base string, lang Lang) string
}

// Categorized is a Record that references a category row by id.
// CategoryID returns 0 when the record has no category relation.
type Categorized interface {
	Record
	CategoryID() int64
}

// Default category labels per language, used when neither the relation
// nor the legacy inline column yields a value.
var defaultCategoryLabels = map[Lang]string{
	LangID: "Umum",
	LangEN: "General",
	LangAR: "عام",
}

// DefaultCategoryLabel returns the fixed category label for lang.
func DefaultCategoryLabel(lang Lang) string {
	return defaultCategoryLabels[Parse(string(lang))]
}

// present reports whether a stored value counts as existing. Whitespace-only
// values behave like absent ones, matching the edit-form convention of
// clearing a translation by blanking the field.
func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ResolveField resolves one field family of rec to the single displayable
// string for lang. category may be nil; fallback is the terminal default
// and may be empty. The precedence for a non-base language is:
//
//  1. the category relation's value for lang,
//  2. the record's own suffixed value,
//  3. the record's base value,
//  4. fallback.
//
// For the base language the base value is returned directly; suffixed
// variants are never consulted. ResolveField is total: it never fails,
// absence at every tier yields fallback.
func ResolveField(rec Record, field string, lang Lang, category Record, fallback string) string {
	if rec == nil {
		return fallback
	}
	if lang.IsDefault() {
		if v := rec.LocalizedField(field, LangID); present(v) {
			return v
		}
		return fallback
	}

	if category != nil {
		if v := category.LocalizedField(field, lang); present(v) {
			return v
		}
	}
	if v := rec.LocalizedField(field, lang); present(v) {
		return v
	}
	if v := rec.LocalizedField(field, LangID); present(v) {
		return v
	}
	return fallback
}

// ResolveCategoryName resolves the display name of rec's category for lang.
// The category is looked up by id in categories; when the id is unknown the
// legacy inline kategori columns duplicated on the record itself are used,
// and when those are empty too the fixed per-language default label.
func ResolveCategoryName(rec Categorized, lang Lang, categories map[int64]Record) string {
	label := DefaultCategoryLabel(lang)
	if rec == nil {
		return label
	}

	if cat, ok := categories[rec.CategoryID()]; ok && cat != nil {
		if v := ResolveField(cat, FieldKategori, lang, nil, ""); present(v) {
			return v
		}
	}

	// Legacy inline copy on the record, kept for rows that predate the
	// kategoris relation.
	if v := ResolveField(rec, FieldKategori, lang, nil, ""); present(v) {
		return v
	}
	return label
}

// Field family names shared by the resolver, the translation assist and
// the store columns.
const (
	FieldJudul    = "judul"
	FieldKonten   = "konten"
	FieldKategori = "kategori"
	FieldJabatan  = "jabatan"
	FieldBidang   = "bidang"
)
