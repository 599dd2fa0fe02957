package report

import (
	"regexp"
	"strings"
)

var (
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	inlineCode = regexp.MustCompile("`([^`]*)`")
	emphasis   = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~)([^*_~]+?)(\*{1,3}|_{1,3}|~~)`)
)

// StripInline reduces markdown-ish inline formatting to plain text:
// links keep their display text, emphasis and inline-code markers are
// dropped, HTML tags are removed.
func StripInline(s string) string {
	s = mdLink.ReplaceAllString(s, "$1")
	s = inlineCode.ReplaceAllString(s, "$1")
	s = emphasis.ReplaceAllString(s, "$2")
	s = htmlTag.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// StripCodeSpans removes inline code spans entirely, content included.
// The spark-series extractor uses this so numbers inside code snippets
// (entity ids, service payloads) do not pollute the series.
func StripCodeSpans(s string) string {
	return inlineCode.ReplaceAllString(s, "")
}
