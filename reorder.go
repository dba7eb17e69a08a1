package resumepdf

// DefaultSectionPriority is the canonical presentation order applied by
// ReorderSections. Earlier builder variants shipped different orders, so the
// priority is data rather than logic; override it per conversion with
// WithSectionPriority.
var DefaultSectionPriority = []Category{
	CategoryExperience,
	CategoryEducation,
	CategoryProjects,
	CategorySkills,
	CategoryCourses,
}

// ReorderSections returns a copy of doc with sections arranged in the given
// priority order: at most one section per prioritized category, followed by
// the remaining sections in their original relative order. The tail holds
// all CategoryOther sections plus any recognized-category sections whose
// category is absent from the priority list; a shorter custom priority
// demotes categories, it never discards them. The header is left untouched.
//
// When two sections map to the same prioritized category the later one wins
// the category slot and the earlier one is dropped. This lossy last-wins
// behavior is long-standing and intentionally preserved.
//
// Reordering is idempotent: reordering an already-reordered document yields
// the same document.
func ReorderSections(doc Document, priority []Category) Document {
	if len(priority) == 0 {
		priority = DefaultSectionPriority
	}

	prioritized := make(map[Category]bool, len(priority))
	for _, cat := range priority {
		prioritized[cat] = true
	}

	slots := make(map[Category]Section)
	var others []Section
	for _, s := range doc.Sections {
		if s.Category == CategoryOther || !prioritized[s.Category] {
			others = append(others, s)
			continue
		}
		slots[s.Category] = s
	}

	reordered := make([]Section, 0, len(slots)+len(others))
	for _, cat := range priority {
		if s, ok := slots[cat]; ok {
			reordered = append(reordered, s)
		}
	}
	reordered = append(reordered, others...)

	doc.Sections = reordered
	return doc
}
