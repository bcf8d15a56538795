package imscc

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// newIdentifier returns an opaque identifier usable anywhere Canvas expects
// an XML ID. XML IDs must not start with a digit, so the ULID (which often
// does) gets a letter prefix. The ULID's 48-bit timestamp plus 80 bits of
// entropy make collisions within one export statistically negligible; no
// registry check is performed.
func newIdentifier() string {
	return "g" + strings.ToLower(ulid.Make().String())
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes caller-supplied text for embedding in XML element
// content or attribute values.
func escapeXML(s string) string {
	if s == "" {
		return ""
	}
	return xmlEscaper.Replace(s)
}

// escapeAmpersands escapes bare ampersands in an HTML fragment while
// leaving existing character entities and markup untouched. HTML bodies are
// embedded raw in the exported documents, and Canvas's parser chokes on a
// lone "&".
func escapeAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !startsEntity(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// startsEntity reports whether s begins with the remainder of a character
// reference, e.g. "amp;", "#160;" or "#x1F600;".
func startsEntity(s string) bool {
	for i := 0; i < len(s) && i < 32; i++ {
		c := s[i]
		switch {
		case c == ';':
			return i > 0
		case c == '#' && i == 0:
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return false
}

// slugify lowercases text and collapses runs of non-alphanumerics into
// single hyphens for use as a filename. Titles with no alphanumeric
// characters produce an empty slug; callers fall back to the resource
// identifier in that case.
func slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
