package resumepdf

// Engine names accepted by Input.Engine and the --engine flag.
const (
	EngineAuto   = "auto"
	EngineChrome = "chrome"
	EngineFPDF   = "fpdf"
)

// PageSetup carries page geometry and styling to a layout engine at the
// start of a document.
type PageSetup struct {
	// WidthIn and HeightIn are the page dimensions in inches.
	WidthIn  float64
	HeightIn float64
	// MarginIn is applied to all four sides.
	MarginIn float64
	Style    Stylesheet
}

// Block is one renderable unit handed to a layout engine. Implementations
// are HeaderBlock, TextBlock, and SpacerBlock.
type Block interface {
	isBlock()
}

// HeaderBlock is the name/title/contact banner rendered as a full-width
// table with the configured header background.
type HeaderBlock struct {
	Name         string
	Title        string
	ContactLines []string
}

// TextBlock is one styled paragraph. Text is raw inline Markdown; each
// engine applies its own inline translation.
type TextBlock struct {
	Role   StyleRole
	Text   string
	Bullet bool
}

// SpacerBlock is vertical whitespace in points.
type SpacerBlock struct {
	Pt float64
}

func (HeaderBlock) isBlock() {}
func (TextBlock) isBlock()   {}
func (SpacerBlock) isBlock() {}

// Engine abstracts the page-layout/rendering backend. A conversion calls
// Begin once, Add for each block in order, then Finalize exactly once to
// obtain the document bytes. Engines are single-use per document but may
// hold reusable resources (e.g. a browser) across documents; Close
// releases those.
type Engine interface {
	Begin(setup PageSetup) error
	Add(block Block) error
	Finalize() ([]byte, error)
	Close() error
}

// Page dimensions in inches (US Letter).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginOnePage     = 0.3
	marginMultiPage   = 0.75
)

// pageSetupFor builds the page geometry for a conversion: US Letter with
// tighter margins in one-page mode.
func pageSetupFor(style Stylesheet) PageSetup {
	margin := marginMultiPage
	if style.OnePage {
		margin = marginOnePage
	}
	return PageSetup{
		WidthIn:  paperWidthInches,
		HeightIn: paperHeightInches,
		MarginIn: margin,
		Style:    style,
	}
}

// BuildBlocks flattens a segmented, reordered document into the renderable
// block sequence consumed by a layout engine. Fragment kinds map to style
// roles; a Content fragment that is one whole bold span is promoted to the
// job-title role with its wrapping stripped.
func BuildBlocks(doc Document, onePage bool) []Block {
	spacing := func(compact, roomy float64) float64 {
		if onePage {
			return compact
		}
		return roomy
	}

	var blocks []Block

	if !doc.Header.IsZero() {
		blocks = append(blocks, HeaderBlock{
			Name:         doc.Header.Name,
			Title:        doc.Header.Title,
			ContactLines: doc.Header.ContactLines,
		})
		blocks = append(blocks, SpacerBlock{Pt: spacing(6, 15)})
	}

	for _, sec := range doc.Sections {
		blocks = append(blocks, TextBlock{Role: RoleSectionHeader, Text: sec.Title})

		for _, entry := range sec.Entries {
			for _, frag := range entry.Fragments {
				blocks = append(blocks, blockForFragment(frag))
			}
			blocks = append(blocks, SpacerBlock{Pt: spacing(2, 6)})
		}

		blocks = append(blocks, SpacerBlock{Pt: spacing(2, 10)})
	}

	return blocks
}

// blockForFragment maps one entry fragment to its text block.
func blockForFragment(frag Fragment) Block {
	switch frag.Kind {
	case Organization:
		return TextBlock{Role: RoleCompany, Text: frag.Text}
	case DateLocation:
		return TextBlock{Role: RoleDateLocation, Text: frag.Text}
	case Bullet:
		return TextBlock{Role: RoleBody, Text: frag.Text, Bullet: true}
	default:
		if isWholeLineBold(frag.Text) {
			title := frag.Text[2 : len(frag.Text)-2]
			return TextBlock{Role: RoleJobTitle, Text: title}
		}
		return TextBlock{Role: RoleSkills, Text: frag.Text}
	}
}
