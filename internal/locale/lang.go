// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package locale implements content localization for the faculty site.
// Content rows carry a base-language (Indonesian) value per field plus
// optional _en/_ar variants; this package resolves the single string to
// display for a requested language, falling back to the base value.
package locale

import "golang.org/x/text/language"

// Text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Lang is a supported content language code.
type Lang string

// Supported content languages. Indonesian is the base language: it is
// always present on a persisted record and is the terminal fallback for
// the other two.
const (
	LangID Lang = "id"
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

// Supported lists all content languages in switcher order.
var Supported = []Lang{LangID, LangEN, LangAR}

// TargetLangs lists the languages the translation assist populates.
var TargetLangs = []Lang{LangEN, LangAR}

var matcher = language.NewMatcher([]language.Tag{
	language.Indonesian,
	language.English,
	language.Arabic,
})

// Parse returns the supported language for code, or LangID when the code
// is unknown or empty.
func Parse(code string) Lang {
	switch Lang(code) {
	case LangID, LangEN, LangAR:
		return Lang(code)
	}
	return LangID
}

// Match resolves an Accept-Language header value to the best supported
// language. Unparseable input maps to the base language.
func Match(acceptLang string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return LangID
	}
	_, idx, _ := matcher.Match(tags...)
	if idx >= 0 && idx < len(Supported) {
		return Supported[idx]
	}
	return LangID
}

// IsDefault reports whether l is the base content language.
func (l Lang) IsDefault() bool {
	return l == LangID
}

// Direction returns the text direction presentation hint for l.
func (l Lang) Direction() string {
	if l == LangAR {
		return DirectionRTL
	}
	return DirectionLTR
}

// Suffix returns the column suffix for l ("" for the base language).
// The store keeps the legacy column convention: judul, judul_en, judul_ar.
func (l Lang) Suffix() string {
	if l.IsDefault() {
		return ""
	}
	return "_" + string(l)
}

// Column returns the storage column name for a field family member,
// e.g. Column("judul", LangAR) == "judul_ar".
func Column(base string, l Lang) string {
	return base + l.Suffix()
}
