// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package locale

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	// ugcPolicy allows the safe tag set the rich-text editor produces.
	ugcPolicy = bluemonday.UGCPolicy()
	// whitespaceRuns matches runs of whitespace to collapse to one space.
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// entityDecodes lists the entity substitutions applied after tag removal,
// in order. The editor produces only these; a full HTML parser is not
// needed. &#34; is included because the sanitizer escapes double quotes
// that way, which keeps StripMarkup idempotent.
var entityDecodes = [][2]string{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
	{"&#34;", "\""},
	{"&#39;", "'"},
}

// StripMarkup reduces rich-text editor HTML to plain text: tags removed,
// the standard entities decoded, whitespace runs collapsed to single
// spaces, result trimmed. Translation providers and display excerpts both
// operate on this form.
//
// Escaping can nest (&amp;amp; is a once-escaped &amp;), so the decode
// runs until the text stops changing. A second StripMarkup then has no
// escape level left to peel, keeping the function idempotent.
func StripMarkup(html string) string {
	text := stripPolicy.Sanitize(html)
	for {
		decoded := text
		for _, e := range entityDecodes {
			decoded = strings.ReplaceAll(decoded, e[0], e[1])
		}
		if decoded == text {
			break
		}
		text = decoded
	}
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SanitizeMarkup cleans rich-text editor HTML before storage, keeping
// safe user-generated-content markup and dropping scripts and event
// handlers.
func SanitizeMarkup(html string) string {
	return ugcPolicy.Sanitize(html)
}

// Excerpt produces a plain-text preview of rich-text content, cut at
// maxRunes on a rune boundary with an ellipsis.
func Excerpt(html string, maxRunes int) string {
	text := StripMarkup(html)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
