// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content records of the faculty site. Every
// localizable field is a field family: a base Indonesian column plus
// optional _en and _ar variants, resolved for display by internal/locale.
package model

import (
	"database/sql"
	"time"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/util"
)

// News is a news article (table beritas).
type News struct {
	ID         int64         `json:"id"`
	Judul      string        `json:"judul"`
	Slug       string        `json:"slug"`
	Konten     string        `json:"konten"`
	Gambar     string        `json:"gambar"`
	KategoriID sql.NullInt64 `json:"kategori_id"`

	// Legacy inline category copies, kept for rows that predate the
	// kategoris relation. The relation wins during resolution.
	Kategori   string `json:"kategori"`
	KategoriEN string `json:"kategori_en"`
	KategoriAR string `json:"kategori_ar"`

	JudulEN  string `json:"judul_en"`
	KontenEN string `json:"konten_en"`
	JudulAR  string `json:"judul_ar"`
	KontenAR string `json:"konten_ar"`

	AuthorID  sql.NullInt64 `json:"author_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// LocalizedField implements locale.Record.
func (n *News) LocalizedField(base string, lang locale.Lang) string {
	switch locale.Column(base, lang) {
	case "judul":
		return n.Judul
	case "judul_en":
		return n.JudulEN
	case "judul_ar":
		return n.JudulAR
	case "konten":
		return n.Konten
	case "konten_en":
		return n.KontenEN
	case "konten_ar":
		return n.KontenAR
	case "kategori":
		return n.Kategori
	case "kategori_en":
		return n.KategoriEN
	case "kategori_ar":
		return n.KategoriAR
	}
	return ""
}

// CategoryID implements locale.Categorized.
func (n *News) CategoryID() int64 {
	if n.KategoriID.Valid {
		return n.KategoriID.Int64
	}
	return 0
}

// TranslatableFields returns the base-language field families the
// translation assist populates for a news article.
func (n *News) TranslatableFields() map[string]string {
	return map[string]string{
		locale.FieldJudul:  n.Judul,
		locale.FieldKonten: n.Konten,
	}
}

// ApplyTranslations merges accepted translations (keyed by suffixed
// column name) into the record. Unknown keys are ignored.
func (n *News) ApplyTranslations(updated map[string]string) {
	for column, value := range updated {
		switch column {
		case "judul_en":
			n.JudulEN = value
		case "judul_ar":
			n.JudulAR = value
		case "konten_en":
			n.KontenEN = value
		case "konten_ar":
			n.KontenAR = value
		}
	}
}

// PublicSlug returns the display route identifier, slug plus id
// tie-breaker.
func (n *News) PublicSlug() string {
	return util.SlugWithID(n.Slug, n.ID)
}
