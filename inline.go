package resumepdf

import (
	"regexp"
	"strings"
)

// Inline span patterns, in substitution order. Each pattern is bounded to
// the nearest delimiter pair via negated character classes, so a pass never
// consumes delimiters that belong to a span substituted by an earlier pass.
var (
	// [label](url) must run first so literal * and _ inside labels or
	// urls are not mis-parsed by the emphasis passes.
	linkSpan = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Combined bold+italic must run before plain bold/italic to avoid
	// double-wrapping.
	boldItalicUnder = regexp.MustCompile(`_\*\*([^*_]+)\*\*_`)
	boldItalicStar  = regexp.MustCompile(`\*\*_([^*_]+)_\*\*`)

	boldSpan       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicStarSpan = regexp.MustCompile(`\*([^*\s][^*]*)\*`)

	italicUnderSpan = regexp.MustCompile(`_([^_\s][^_]*)_`)

	codeSpan = regexp.MustCompile("`([^`]+)`")
)

// TranslateInline converts raw inline Markdown spans to the rich-text
// markup consumed by the direct layout engine. Substitutions run as an
// ordered pipeline of pure passes over the string; on text already in
// target markup with no raw delimiters left, the function is a no-op.
func TranslateInline(text string) string {
	text = linkSpan.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = boldItalicUnder.ReplaceAllString(text, "<b><i>$1</i></b>")
	text = boldItalicStar.ReplaceAllString(text, "<b><i>$1</i></b>")
	text = boldSpan.ReplaceAllString(text, "<b>$1</b>")
	text = italicStarSpan.ReplaceAllString(text, "<i>$1</i>")
	text = replaceUnderscoreItalics(text)
	text = codeSpan.ReplaceAllString(text, "<code>$1</code>")
	return text
}

// replaceUnderscoreItalics substitutes _text_ spans that sit at word
// boundaries, leaving underscores inside identifiers (snake_case) and inside
// already-substituted link targets alone. The boundary characters are
// inspected but never consumed, so adjacent spans separated by a single
// space each get their own substitution. A rejected candidate only advances
// the scan by one byte: its closing underscore may open the next span.
func replaceUnderscoreItalics(text string) string {
	loc := italicUnderSpan.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}

	var b strings.Builder
	pos := 0
	for loc != nil {
		start, end := pos+loc[0], pos+loc[1]
		if (start > 0 && isWordByte(text[start-1])) || (end < len(text) && isWordByte(text[end])) {
			b.WriteString(text[pos : start+1])
			pos = start + 1
		} else {
			b.WriteString(text[pos:start])
			b.WriteString("<i>")
			b.WriteString(text[pos+loc[2] : pos+loc[3]])
			b.WriteString("</i>")
			pos = end
		}
		loc = italicUnderSpan.FindStringSubmatchIndex(text[pos:])
	}
	b.WriteString(text[pos:])
	return b.String()
}

// isWordByte reports whether c belongs to the \w class: ASCII letters,
// digits, or underscore.
func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
