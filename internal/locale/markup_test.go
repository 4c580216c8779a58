package locale

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Pengumuman libur semester",
			expected: "Pengumuman libur semester",
		},
		{
			name:     "tags removed",
			input:    "<p>Berita <strong>penting</strong></p>",
			expected: "Berita penting",
		},
		{
			name:     "nbsp becomes space",
			input:    "satu&nbsp;dua",
			expected: "satu dua",
		},
		{
			name:     "entities decoded",
			input:    "a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;",
			expected: `a & b <c> "d" 'e'`,
		},
		{
			name:     "double-escaped ampersand fully decoded",
			input:    "harga &amp;amp; diskon",
			expected: "harga & diskon",
		},
		{
			name:     "triple-escaped ampersand fully decoded",
			input:    "&amp;amp;amp;",
			expected: "&",
		},
		{
			name:     "whitespace collapsed and trimmed",
			input:    "  <p>satu</p>\n\t<p>dua   tiga</p>  ",
			expected: "satu dua tiga",
		},
		{
			name:     "only markup yields empty",
			input:    "<p><br/></p>",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkup(tt.input)
			if got != tt.expected {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "safe formatting kept",
			input:    "<p>Berita <strong>penting</strong></p>",
			expected: "<p>Berita <strong>penting</strong></p>",
		},
		{
			name:     "script dropped",
			input:    `<p>halo</p><script>alert(1)</script>`,
			expected: "<p>halo</p>",
		},
		{
			name:     "event handler stripped",
			input:    `<p onclick="evil()">halo</p>`,
			expected: "<p>halo</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeMarkup(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeMarkup(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("<p>Pengumuman libur</p>", 100); got != "Pengumuman libur" {
		t.Errorf("short content: got %q", got)
	}
	if got := Excerpt("<p>satu dua tiga</p>", 8); got != "satu dua…" {
		t.Errorf("cut content: got %q", got)
	}
	if got := Excerpt("<p>satu dua</p>", 5); got != "satu…" {
		t.Errorf("trailing space trimmed before ellipsis: got %q", got)
	}
}

func TestStripMarkupIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Berita <em>penting</em> &amp; terkini</p>",
		"plain text",
		"quotes \" and ' and & and <",
		"&nbsp;&amp;&lt;&gt;&quot;&#39;",
		"<div><ul><li>satu</li><li>dua</li></ul></div>",
		"harga &amp;amp; diskon",
		"&amp;amp;",
		"&amp;amp;amp;",
	}
	for _, in := range inputs {
		once := StripMarkup(in)
		twice := StripMarkup(once)
		if once != twice {
			t.Errorf("StripMarkup not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
