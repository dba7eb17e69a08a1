package resumepdf

import "strings"

// SegmentEntries groups a section's content lines into entries using a
// consecutive-line state machine. An organization line (a whole-line bold
// span) always starts a new entry; every other recognized shape appends to
// the entry currently open. The final open entry is flushed at section end.
//
// Classification precedence per line:
//  1. whole-line bold (not ***)          -> Organization
//  2. *...* wrapping containing a pipe   -> DateLocation
//  3. "- " prefix                        -> Bullet
//  4. non-empty, not a heading           -> Content
//
// Lines matching none of the shapes are skipped.
func SegmentEntries(lines []string) []Entry {
	var (
		entries []Entry
		current []Fragment
	)

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, Entry{Fragments: current})
			current = nil
		}
	}

	for _, line := range lines {
		switch {
		case isWholeLineBold(line):
			flush()
			current = append(current, Fragment{
				Kind: Organization,
				Text: strings.Trim(line, "*"),
			})

		case isDateLocationLine(line):
			current = append(current, Fragment{
				Kind: DateLocation,
				Text: strings.TrimSpace(strings.Trim(line, "*")),
			})

		case strings.HasPrefix(line, "- "):
			current = append(current, Fragment{
				Kind: Bullet,
				Text: line[2:],
			})

		case line != "" && !strings.HasPrefix(line, "#"):
			current = append(current, Fragment{
				Kind: Content,
				Text: line,
			})
		}
	}
	flush()

	return entries
}

// isDateLocationLine matches italic-wrapped lines carrying a pipe-separated
// date and location, e.g. "*Sep 2018 - May 2022 | Cambridge, MA*".
func isDateLocationLine(line string) bool {
	return strings.HasPrefix(line, "*") &&
		strings.HasSuffix(line, "*") &&
		strings.Contains(line, "|")
}

// SegmentDocument fills in the Entries of every section in place and
// returns the document. Section Lines are preserved untouched.
func SegmentDocument(doc Document) Document {
	for i := range doc.Sections {
		doc.Sections[i].Entries = SegmentEntries(doc.Sections[i].Lines)
	}
	return doc
}
