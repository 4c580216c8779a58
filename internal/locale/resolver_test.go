package locale

import "testing"

// testRecord is a minimal Record backed by a column map.
type testRecord struct {
	fields     map[string]string
	categoryID int64
}

func (r *testRecord) LocalizedField(base string, lang Lang) string {
	return r.fields[Column(base, lang)]
}

func (r *testRecord) CategoryID() int64 { return r.categoryID }

func TestResolveFieldPrecedence(t *testing.T) {
	rec := &testRecord{fields: map[string]string{
		"judul":    "Berita Penting",
		"judul_en": "Important News",
		"judul_ar": "",
		"konten":   "Isi berita",
	}}
	cat := &testRecord{fields: map[string]string{
		"judul_en": "Category Title",
	}}

	tests := []struct {
		name     string
		field    string
		lang     Lang
		category Record
		fallback string
		want     string
	}{
		{
			name:  "default language returns base verbatim",
			field: "judul", lang: LangID,
			want: "Berita Penting",
		},
		{
			name:  "suffixed value wins for non-default language",
			field: "judul", lang: LangEN,
			want: "Important News",
		},
		{
			name:  "category relation wins over own suffixed value",
			field: "judul", lang: LangEN, category: cat,
			want: "Category Title",
		},
		{
			name:  "empty suffixed falls back to base",
			field: "judul", lang: LangAR,
			want: "Berita Penting",
		},
		{
			name:  "missing family falls back to base",
			field: "konten", lang: LangEN,
			want: "Isi berita",
		},
		{
			name:  "absent everywhere yields fallback",
			field: "ringkasan", lang: LangEN, fallback: "Untitled",
			want: "Untitled",
		},
		{
			name:  "absent everywhere with empty fallback yields empty string",
			field: "ringkasan", lang: LangAR,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveField(rec, tt.field, tt.lang, tt.category, tt.fallback)
			if got != tt.want {
				t.Errorf("ResolveField(%q, %q) = %q, want %q", tt.field, tt.lang, got, tt.want)
			}
		})
	}
}

func TestResolveFieldTotality(t *testing.T) {
	// Empty record, nil record: must always return a string.
	empty := &testRecord{fields: map[string]string{}}
	for _, lang := range Supported {
		if got := ResolveField(empty, "judul", lang, nil, ""); got != "" {
			t.Errorf("empty record, lang %s: got %q, want empty", lang, got)
		}
		if got := ResolveField(nil, "judul", lang, nil, "x"); got != "x" {
			t.Errorf("nil record, lang %s: got %q, want fallback", lang, got)
		}
	}
}

func TestResolveFieldDefaultIgnoresSuffixed(t *testing.T) {
	rec := &testRecord{fields: map[string]string{
		"judul":    "Asli",
		"judul_en": "Translated",
	}}
	if got := ResolveField(rec, "judul", LangID, nil, ""); got != "Asli" {
		t.Errorf("got %q, want base value for default language", got)
	}
}

func TestResolveFieldWhitespaceIsAbsent(t *testing.T) {
	rec := &testRecord{fields: map[string]string{
		"judul":    "Pengumuman Libur",
		"judul_en": "   ",
	}}
	if got := ResolveField(rec, "judul", LangEN, nil, ""); got != "Pengumuman Libur" {
		t.Errorf("got %q, want fallback past whitespace-only translation", got)
	}
}

func TestResolveCategoryName(t *testing.T) {
	categories := map[int64]Record{
		3: &testRecord{fields: map[string]string{
			"kategori":    "Pendidikan",
			"kategori_en": "Education",
			"kategori_ar": "تعليم",
		}},
	}

	tests := []struct {
		name string
		rec  *testRecord
		lang Lang
		want string
	}{
		{
			name: "relation wins over legacy inline string",
			rec: &testRecord{
				categoryID: 3,
				fields:     map[string]string{"kategori_en": "Old Inline"},
			},
			lang: LangEN,
			want: "Education",
		},
		{
			name: "relation base value for default language",
			rec:  &testRecord{categoryID: 3, fields: map[string]string{}},
			lang: LangID,
			want: "Pendidikan",
		},
		{
			name: "unknown id falls back to legacy inline",
			rec: &testRecord{
				categoryID: 99,
				fields:     map[string]string{"kategori": "Hukum", "kategori_en": "Law"},
			},
			lang: LangEN,
			want: "Law",
		},
		{
			name: "no relation and no inline yields default label",
			rec:  &testRecord{fields: map[string]string{}},
			lang: LangEN,
			want: "General",
		},
		{
			name: "default label is localized",
			rec:  &testRecord{fields: map[string]string{}},
			lang: LangAR,
			want: "عام",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCategoryName(tt.rec, tt.lang, categories)
			if got != tt.want {
				t.Errorf("ResolveCategoryName(lang=%s) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}
