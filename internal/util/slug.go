// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose helpers: URL slug generation and
// sql.Null conversion shims used at the store boundary.
package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugInvalid matches everything a slug may not contain.
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches runs of hyphens.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-friendly slug: accents decomposed,
// non-Latin script transliterated, lowercased, runs of non-alphanumeric
// characters collapsed to single hyphens, leading/trailing hyphens trimmed.
// Slugs derived from titles are not unique on their own; display routes
// append the record id (see SlugWithID).
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	// Transliterate remaining non-ASCII (Arabic names, etc.) so lecturer
	// and article titles in any supported script produce usable slugs.
	result = unidecode.Unidecode(result)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = slugInvalid.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// SlugWithID appends the record id to a slug as the uniqueness tie-breaker
// used in public routes: "info-ujian-akhir-42".
func SlugWithID(slug string, id int64) string {
	if slug == "" {
		return fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%s-%d", slug, id)
}

// IDFromSlug extracts the id tie-breaker from a public route identifier
// produced by SlugWithID. The trailing hyphen-separated segment must be
// a positive integer; it reports false otherwise.
func IDFromSlug(s string) (int64, bool) {
	idx := strings.LastIndexByte(s, '-')
	tail := s[idx+1:] // whole string when there is no hyphen
	if tail == "" {
		return 0, false
	}
	var id int64
	for _, r := range tail {
		if r < '0' || r > '9' {
			return 0, false
		}
		id = id*10 + int64(r-'0')
	}
	if id <= 0 {
		return 0, false
	}
	return id, true
}

// IsValidSlug checks whether s is a well-formed slug.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !strings.Contains(s, "--")
}
