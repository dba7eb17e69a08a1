package resumepdf

// Category is the canonical section type inferred from a section title.
// It drives section reordering; unrecognized titles map to CategoryOther.
type Category int

// Canonical section categories.
const (
	CategoryOther Category = iota
	CategoryEducation
	CategoryExperience
	CategorySkills
	CategoryProjects
	CategoryCourses
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryEducation:
		return "education"
	case CategoryExperience:
		return "experience"
	case CategorySkills:
		return "skills"
	case CategoryProjects:
		return "projects"
	case CategoryCourses:
		return "courses"
	default:
		return "other"
	}
}

// FragmentKind classifies a single line within a section entry.
type FragmentKind int

// Fragment kinds, in classifier precedence order.
const (
	Organization FragmentKind = iota
	DateLocation
	Bullet
	Content
)

// Fragment is one typed line of an entry.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// Entry is one organization/role/date + bullet group within a section,
// such as a single job or degree.
type Entry struct {
	Fragments []Fragment
}

// Header holds the name/title/contact block parsed from the level-1 heading.
type Header struct {
	Name         string
	Title        string // empty when no standalone bold line was found
	ContactLines []string
}

// IsZero reports whether the header is absent from the document.
func (h Header) IsZero() bool {
	return h.Name == "" && h.Title == "" && len(h.ContactLines) == 0
}

// Section is one "##"-delimited block of the resume.
type Section struct {
	Title    string
	Category Category
	Lines    []string // raw content lines, pre-segmentation
	Entries  []Entry  // populated by SegmentEntries
}

// Document is the structured model of a parsed resume. At most one Header
// exists per document, and it always precedes all sections.
type Document struct {
	Header   Header
	Sections []Section
}
