package svg

import (
	"regexp"
	"strings"
)

var (
	// descOpenTag detects a description element by opening tag alone so that
	// malformed documents (unclosed <desc>) still register as annotated.
	descOpenTag = regexp.MustCompile(`(?i)<desc\b`)

	// descElement matches a complete description element together with the
	// trailing horizontal whitespace and newline InsertDescription emits.
	descElement = regexp.MustCompile(`(?is)<desc\b[^>]*>(.*?)</desc>[ \t]*\r?\n?`)

	rootOpenTag = regexp.MustCompile(`(?i)<svg\b[^>]*>`)
)

// HasDescription reports whether content contains a description element. The
// match is case-insensitive and keys on the opening tag only.
func HasDescription(content string) bool {
	return descOpenTag.MatchString(content)
}

// ExtractDescription returns the inner text of the first complete description
// element. The text is returned as stored, entity escapes included; only
// surrounding whitespace is trimmed. The second return value is false when no
// complete element exists.
func ExtractDescription(content string) (string, bool) {
	m := descElement.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// StripDescription removes every complete description element, including the
// trailing whitespace/newline it carries. Content without a description
// element is returned unchanged.
func StripDescription(content string) string {
	return descElement.ReplaceAllString(content, "")
}

// EscapeText escapes markup-significant characters for embedding inside a
// description element. The ampersand substitution runs first so the later
// substitutions are not double-escaped.
func EscapeText(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// InsertDescription embeds text as the document's sole description element,
// placed immediately after the first root opening tag. Any existing element
// is removed first, so applying InsertDescription twice leaves only the
// second text. Content without a root opening tag is returned unchanged.
func InsertDescription(content, text string) string {
	stripped := StripDescription(content)
	loc := rootOpenTag.FindStringIndex(stripped)
	if loc == nil {
		return content
	}

	var b strings.Builder
	b.Grow(len(stripped) + len(text) + 16)
	b.WriteString(stripped[:loc[1]])
	b.WriteString("<desc>")
	b.WriteString(EscapeText(text))
	b.WriteString("</desc>\n")
	b.WriteString(stripped[loc[1]:])
	return b.String()
}
