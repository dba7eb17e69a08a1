package resumepdf

import (
	"regexp"
	"strings"
)

// Precompiled patterns for line classification.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Horizontal rule: a line consisting solely of three or more hyphens
	horizontalRule = regexp.MustCompile(`^-{3,}$`)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitContentLines splits raw document text into an ordered sequence of
// trimmed, non-empty lines. Blank lines and horizontal rules are removed;
// no other normalization is applied. The function is pure and preserves
// the relative order of surviving lines.
func SplitContentLines(content string) []string {
	content = normalizeLineEndings(content)

	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || horizontalRule.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
