// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// Category is a news category (table kategoris). Its name is itself a
// field family, which is why category resolution takes precedence over
// the legacy inline copies on news rows.
type Category struct {
	ID         int64  `json:"id"`
	Kategori   string `json:"kategori"`
	KategoriEN string `json:"kategori_en"`
	KategoriAR string `json:"kategori_ar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedField implements locale.Record.
func (c *Category) LocalizedField(base string, lang locale.Lang) string {
	switch locale.Column(base, lang) {
	case "kategori":
		return c.Kategori
	case "kategori_en":
		return c.KategoriEN
	case "kategori_ar":
		return c.KategoriAR
	}
	return ""
}

// TranslatableFields returns the single name family of a category.
func (c *Category) TranslatableFields() map[string]string {
	return map[string]string{locale.FieldKategori: c.Kategori}
}

// ApplyTranslations merges accepted translations into the record.
func (c *Category) ApplyTranslations(updated map[string]string) {
	for column, value := range updated {
		switch column {
		case "kategori_en":
			c.KategoriEN = value
		case "kategori_ar":
			c.KategoriAR = value
		}
	}
}

// LookupTable converts a category list to the id-keyed map consumed by
// locale.ResolveCategoryName.
func LookupTable(categories []Category) map[int64]locale.Record {
	table := make(map[int64]locale.Record, len(categories))
	for i := range categories {
		table[categories[i].ID] = &categories[i]
	}
	return table
}
