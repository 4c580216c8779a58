// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package translate

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// FieldFailure describes one (field, language) pair that could not be
// translated. The description is human readable; the editor sees the
// list and decides whether to save with the translation missing.
type FieldFailure struct {
	Field  string      `json:"field"`
	Lang   locale.Lang `json:"lang"`
	Reason string      `json:"reason"`
}

func (f FieldFailure) String() string {
	return fmt.Sprintf("%s (%s): %s", f.Field, f.Lang, f.Reason)
}

// FieldsResult aggregates a translate-assist run. Updated maps suffixed
// column names (judul_en, konten_ar, ...) to accepted translations.
// Failures lists every pair that did not produce one. Partial results
// are expected and normal; the caller must not persist silently when
// Failures is non-empty.
type FieldsResult struct {
	Updated  map[string]string `json:"updated"`
	Failures []FieldFailure    `json:"failures"`
}

// TranslateFields translates every non-empty base-language field into
// every target language. All (field, language) pairs are independent and
// are issued concurrently; one pair failing neither cancels nor blocks
// the others. Rich-text values are reduced to plain text before dispatch.
// Fields whose stripped value is empty are skipped entirely: there is
// nothing to translate and nothing to report.
func (t *Translator) TranslateFields(ctx context.Context, fields map[string]string, targets []locale.Lang) *FieldsResult {
	result := &FieldsResult{Updated: make(map[string]string)}

	type pair struct {
		field string
		text  string
		lang  locale.Lang
	}
	var pairs []pair
	for field, value := range fields {
		text := locale.StripMarkup(value)
		if text == "" {
			continue
		}
		for _, lang := range targets {
			if lang.IsDefault() {
				continue
			}
			pairs = append(pairs, pair{field: field, text: text, lang: lang})
		}
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, p := range pairs {
		wg.Add(1)
		go func(p pair) {
			defer wg.Done()

			res, err := t.Translate(ctx, p.text, p.lang)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, FieldFailure{
					Field:  p.field,
					Lang:   p.lang,
					Reason: err.Error(),
				})
				return
			}
			result.Updated[locale.Column(p.field, p.lang)] = res.Text
		}(p)
	}
	wg.Wait()

	// Deterministic failure order for display and tests.
	sort.Slice(result.Failures, func(i, j int) bool {
		if result.Failures[i].Field != result.Failures[j].Field {
			return result.Failures[i].Field < result.Failures[j].Field
		}
		return result.Failures[i].Lang < result.Failures[j].Lang
	})

	return result
}
