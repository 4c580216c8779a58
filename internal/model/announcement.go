// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/util"
)

// Announcement is an official announcement (table pengumumans).
type Announcement struct {
	ID     int64  `json:"id"`
	Judul  string `json:"judul"`
	Slug   string `json:"slug"`
	Konten string `json:"konten"`

	JudulEN  string `json:"judul_en"`
	KontenEN string `json:"konten_en"`
	JudulAR  string `json:"judul_ar"`
	KontenAR string `json:"konten_ar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedField implements locale.Record.
func (a *Announcement) LocalizedField(base string, lang locale.Lang) string {
	switch locale.Column(base, lang) {
	case "judul":
		return a.Judul
	case "judul_en":
		return a.JudulEN
	case "judul_ar":
		return a.JudulAR
	case "konten":
		return a.Konten
	case "konten_en":
		return a.KontenEN
	case "konten_ar":
		return a.KontenAR
	}
	return ""
}

// TranslatableFields returns the base-language field families for the
// translation assist.
func (a *Announcement) TranslatableFields() map[string]string {
	return map[string]string{
		locale.FieldJudul:  a.Judul,
		locale.FieldKonten: a.Konten,
	}
}

// ApplyTranslations merges accepted translations into the record.
func (a *Announcement) ApplyTranslations(updated map[string]string) {
	for column, value := range updated {
		switch column {
		case "judul_en":
			a.JudulEN = value
		case "judul_ar":
			a.JudulAR = value
		case "konten_en":
			a.KontenEN = value
		case "konten_ar":
			a.KontenAR = value
		}
	}
}

// PublicSlug returns the display route identifier.
func (a *Announcement) PublicSlug() string {
	return util.SlugWithID(a.Slug, a.ID)
}
