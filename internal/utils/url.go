package utils

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName trims surrounding whitespace and converts s to Unicode NFC,
// so that visually identical example names map to the same remote path.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// JoinURL appends escaped path segments to base and attaches query.
// Segments are escaped individually, so a "/" inside a segment stays literal.
func JoinURL(base string, query url.Values, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String()
}
