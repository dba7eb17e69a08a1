package resumepdf

import "strings"

// ContactKeywords are the network-profile keywords recognized by the header
// contact heuristic, matched case-insensitively.
var ContactKeywords = []string{"linkedin", "github"}

// ParseDocument parses resume-flavored Markdown into a Document. The input
// is split into classified lines first; a "# " line opens the header block,
// a "## " line opens a section block, and any other line is appended to the
// block currently open. Content lines appearing before any heading are
// dropped, since valid input starts with the level-1 name heading.
//
// Parsing never fails: an input without a header yields a zero Header, and
// unrecognized section titles land in CategoryOther.
func ParseDocument(content string) Document {
	var doc Document

	// Block accumulator state. kind is "" until the first heading.
	var (
		kind    string // "header" or "section"
		title   string
		lines   []string
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		switch kind {
		case "header":
			doc.Header = buildHeader(title, lines)
		case "section":
			doc.Sections = append(doc.Sections, Section{
				Title:    title,
				Category: CategoryOf(title),
				Lines:    lines,
			})
		}
		lines = nil
	}

	for _, line := range SplitContentLines(content) {
		switch {
		case strings.HasPrefix(line, "# "):
			flush()
			kind, title, started = "header", strings.TrimSpace(line[2:]), true
		case strings.HasPrefix(line, "## "):
			flush()
			kind, title, started = "section", strings.TrimSpace(line[3:]), true
		case started:
			lines = append(lines, line)
		}
	}
	flush()

	return doc
}

// buildHeader classifies the content lines of the header block. Contact
// heuristics are checked first; a line that survives them and is wrapped in
// a single bold span becomes the professional title. Later title candidates
// do not replace an earlier one.
func buildHeader(name string, lines []string) Header {
	h := Header{Name: name}
	for _, line := range lines {
		switch {
		case isContactLine(line):
			h.ContactLines = append(h.ContactLines, line)
		case h.Title == "" && isWholeLineBold(line):
			h.Title = strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")
		}
	}
	return h
}

// isContactLine reports whether a header line looks like contact
// information: an email, a profile keyword, a URL, or a phone number
// (parenthesis heuristic).
func isContactLine(line string) bool {
	if strings.Contains(line, "@") || strings.Contains(line, "(") {
		return true
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "http") {
		return true
	}
	for _, kw := range ContactKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isWholeLineBold reports whether a line is one bold span covering the whole
// line, with no internal bold delimiters. Lines like "**MIT** — *B.S.*"
// fail this check and remain ordinary content.
func isWholeLineBold(line string) bool {
	if !strings.HasPrefix(line, "**") || strings.HasPrefix(line, "***") {
		return false
	}
	if !strings.HasSuffix(line, "**") || len(line) < 5 {
		return false
	}
	inner := line[2 : len(line)-2]
	return inner != "" && !strings.Contains(inner, "**")
}

// CategoryOf maps a section title to its canonical category using
// case-insensitive keyword matching. First match wins.
func CategoryOf(title string) Category {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "education"):
		return CategoryEducation
	case strings.Contains(lower, "experience"), strings.Contains(lower, "work"):
		return CategoryExperience
	case strings.Contains(lower, "skill"):
		return CategorySkills
	case strings.Contains(lower, "project"):
		return CategoryProjects
	case strings.Contains(lower, "course"):
		return CategoryCourses
	default:
		return CategoryOther
	}
}
