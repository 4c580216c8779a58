// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package translate

import (
	"sort"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// ProviderDictionary is reported when the built-in dictionary served the
// request without touching any external provider.
const ProviderDictionary = "dictionary"

// categoryDictionary maps the closed set of category words to their fixed
// translations. Category names recur on every translate-assist run, so
// serving them locally avoids burning free-tier provider quota.
var categoryDictionary = map[string]map[locale.Lang]string{
	"Umum":       {locale.LangEN: "General", locale.LangAR: "عام"},
	"Pendidikan": {locale.LangEN: "Education", locale.LangAR: "تعليم"},
	"Agama":      {locale.LangEN: "Religion", locale.LangAR: "دين"},
	"Hukum":      {locale.LangEN: "Law", locale.LangAR: "قانون"},
	"Ekonomi":    {locale.LangEN: "Economy", locale.LangAR: "اقتصاد"},
}

// lookupDictionary returns the fixed translation for text, if any.
func lookupDictionary(text string, target locale.Lang) (string, bool) {
	entry, ok := categoryDictionary[text]
	if !ok {
		return "", false
	}
	translated, ok := entry[target]
	return translated, ok
}

// CategoryEntry is one row of the built-in category vocabulary.
type CategoryEntry struct {
	Kategori   string
	KategoriEN string
	KategoriAR string
}

// CategoryEntries returns the built-in vocabulary in stable order. The
// store seeds the kategoris table from this list so the dictionary and
// the default categories cannot drift apart.
func CategoryEntries() []CategoryEntry {
	names := make([]string, 0, len(categoryDictionary))
	for name := range categoryDictionary {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]CategoryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, CategoryEntry{
			Kategori:   name,
			KategoriEN: categoryDictionary[name][locale.LangEN],
			KategoriAR: categoryDictionary[name][locale.LangAR],
		})
	}
	return entries
}
