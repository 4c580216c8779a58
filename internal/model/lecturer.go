// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// Lecturer is a faculty member in the public directory (table dosens).
// Names, contact details and the photo URL are language-agnostic; the
// position and field of study are field families.
type Lecturer struct {
	ID         int64  `json:"id"`
	Nama       string `json:"nama"`
	NIDN       string `json:"nidn"`
	Jabatan    string `json:"jabatan"`
	Bidang     string `json:"bidang"`
	Pendidikan string `json:"pendidikan"`
	Email      string `json:"email"`
	Foto       string `json:"foto"`

	JabatanEN string `json:"jabatan_en"`
	JabatanAR string `json:"jabatan_ar"`
	BidangEN  string `json:"bidang_en"`
	BidangAR  string `json:"bidang_ar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedField implements locale.Record.
func (l *Lecturer) LocalizedField(base string, lang locale.Lang) string {
	switch locale.Column(base, lang) {
	case "jabatan":
		return l.Jabatan
	case "jabatan_en":
		return l.JabatanEN
	case "jabatan_ar":
		return l.JabatanAR
	case "bidang":
		return l.Bidang
	case "bidang_en":
		return l.BidangEN
	case "bidang_ar":
		return l.BidangAR
	}
	return ""
}

// TranslatableFields returns the base-language field families for the
// translation assist.
func (l *Lecturer) TranslatableFields() map[string]string {
	return map[string]string{
		locale.FieldJabatan: l.Jabatan,
		locale.FieldBidang:  l.Bidang,
	}
}

// ApplyTranslations merges accepted translations into the record.
func (l *Lecturer) ApplyTranslations(updated map[string]string) {
	for column, value := range updated {
		switch column {
		case "jabatan_en":
			l.JabatanEN = value
		case "jabatan_ar":
			l.JabatanAR = value
		case "bidang_en":
			l.BidangEN = value
		case "bidang_ar":
			l.BidangAR = value
		}
	}
}
