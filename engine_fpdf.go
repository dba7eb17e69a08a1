package resumepdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// pointsPerInch converts the inch-based page setup to gofpdf's point unit.
const pointsPerInch = 72.0

// fpdfEngine is the direct paginated-document engine built on gofpdf. It
// needs no external process, so it doubles as the fallback when headless
// Chrome is unavailable.
type fpdfEngine struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string // UTF-8 to cp1252 for the core fonts
	setup PageSetup
	width float64 // content width in points
}

func newFPDFEngine() *fpdfEngine {
	return &fpdfEngine{}
}

// Begin creates the document and the first page.
func (e *fpdfEngine) Begin(setup PageSetup) error {
	e.setup = setup

	pdf := gofpdf.New("P", "pt", "Letter", "")
	margin := setup.MarginIn * pointsPerInch
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	// Dark theme paints a full-bleed background at the top of every
	// page, including pages created by automatic breaks.
	if setup.Style.Dark {
		bg := setup.Style.Palette.Bg
		pageW, pageH := setup.WidthIn*pointsPerInch, setup.HeightIn*pointsPerInch
		pdf.SetHeaderFunc(func() {
			pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
			pdf.Rect(0, 0, pageW, pageH, "F")
		})
	}

	pdf.AddPage()
	e.pdf = pdf
	e.tr = pdf.UnicodeTranslatorFromDescriptor("")
	e.width = setup.WidthIn*pointsPerInch - 2*margin
	return nil
}

// Add renders one block.
func (e *fpdfEngine) Add(block Block) error {
	if e.pdf == nil {
		return fmt.Errorf("%w: Add before Begin", ErrPDFGeneration)
	}

	switch b := block.(type) {
	case HeaderBlock:
		e.addHeader(b)
	case TextBlock:
		e.addText(b)
	case SpacerBlock:
		e.pdf.Ln(b.Pt)
	}
	return e.err()
}

// addHeader draws the name/title/contact banner as filled full-width rows.
func (e *fpdfEngine) addHeader(b HeaderBlock) {
	st := e.setup.Style
	banner := st.HeaderColor
	if st.WhiteHeader {
		banner = st.Palette.Card
	}
	e.pdf.SetFillColor(int(banner.R), int(banner.G), int(banner.B))

	pad := 8.0
	e.bannerRow("", TextStyle{Size: pad}, pad) // top padding
	e.bannerRow(b.Name, st.Roles[RoleName], 0)
	if b.Title != "" {
		e.bannerRow(b.Title, st.Roles[RoleTitle], 0)
	}
	for _, line := range b.ContactLines {
		e.bannerRow(TranslateInline(line), st.Roles[RoleContact], 0)
	}
	e.bannerRow("", TextStyle{Size: pad}, pad)
}

// bannerRow draws one centered, filled row of the header banner. Inline
// markup in contact lines is flattened to plain text; the banner is a
// table, not flowed prose.
func (e *fpdfEngine) bannerRow(markup string, style TextStyle, height float64) {
	if height == 0 {
		height = style.Size + style.SpaceAfter + 2
	}
	e.applyStyle(style)
	text := flattenSpans(parseSpans(markup))
	e.pdf.CellFormat(e.width, height, e.tr(text), "", 1, "CM", true, 0, "")
}

// addText renders a styled paragraph with inline span support.
func (e *fpdfEngine) addText(b TextBlock) {
	style := e.setup.Style.Roles[b.Role]
	e.applyStyle(style)

	lineH := style.Size * 1.2
	left, _, _, _ := e.pdf.GetMargins()

	if b.Bullet {
		e.pdf.SetX(left + style.Indent)
		e.pdf.CellFormat(12, lineH, e.tr("•"), "", 0, "L", false, 0, "")
	}

	e.writeSpans(parseSpans(TranslateInline(b.Text)), style, lineH)
	e.pdf.Ln(lineH + style.SpaceAfter)
	e.pdf.SetX(left)
}

// writeSpans flows styled spans onto the page, switching fonts per span.
func (e *fpdfEngine) writeSpans(spans []span, base TextStyle, lineH float64) {
	family := e.setup.Style.Faces.PDFFamily
	for _, sp := range spans {
		fam := family
		if sp.code {
			fam = "Courier"
		}
		e.pdf.SetFont(fam, fontStyleString(base.Bold || sp.bold, base.Italic || sp.italic), base.Size)

		if sp.link != "" {
			link := e.setup.Style.Palette.Link
			e.pdf.SetTextColor(int(link.R), int(link.G), int(link.B))
			e.pdf.WriteLinkString(lineH, e.tr(sp.text), sp.link)
			e.setTextColor(base.Color)
			continue
		}
		e.pdf.Write(lineH, e.tr(sp.text))
	}
}

// applyStyle sets font and text color for a role style.
func (e *fpdfEngine) applyStyle(style TextStyle) {
	e.pdf.SetFont(e.setup.Style.Faces.PDFFamily, fontStyleString(style.Bold, style.Italic), style.Size)
	e.setTextColor(style.Color)
}

func (e *fpdfEngine) setTextColor(c Color) {
	e.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

// fontStyleString builds gofpdf's style string from flags.
func fontStyleString(bold, italic bool) string {
	var s string
	if bold {
		s += "B"
	}
	if italic {
		s += "I"
	}
	return s
}

// Finalize closes the document and returns its bytes.
func (e *fpdfEngine) Finalize() ([]byte, error) {
	if e.pdf == nil {
		return nil, fmt.Errorf("%w: Finalize before Begin", ErrPDFGeneration)
	}
	var buf bytes.Buffer
	if err := e.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// err surfaces gofpdf's sticky internal error, if any.
func (e *fpdfEngine) err() error {
	if err := e.pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// Close is a no-op; gofpdf holds no external resources.
func (e *fpdfEngine) Close() error { return nil }

// span is one run of uniformly styled text parsed from the inline
// translator's markup.
type span struct {
	text   string
	bold   bool
	italic bool
	code   bool
	link   string
}

// parseSpans scans the rich-text markup emitted by TranslateInline
// (<b>, <i>, <code>, <a href="...">) into styled runs. Unknown or
// unbalanced tags are treated as literal text.
func parseSpans(markup string) []span {
	var out []span
	var cur strings.Builder
	var bold, italic, code bool
	var link string

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, span{text: cur.String(), bold: bold, italic: italic, code: code, link: link})
			cur.Reset()
		}
	}

	for i := 0; i < len(markup); {
		if markup[i] != '<' {
			cur.WriteByte(markup[i])
			i++
			continue
		}

		rest := markup[i:]
		switch {
		case strings.HasPrefix(rest, "<b>"):
			flush()
			bold = true
			i += 3
		case strings.HasPrefix(rest, "</b>"):
			flush()
			bold = false
			i += 4
		case strings.HasPrefix(rest, "<i>"):
			flush()
			italic = true
			i += 3
		case strings.HasPrefix(rest, "</i>"):
			flush()
			italic = false
			i += 4
		case strings.HasPrefix(rest, "<code>"):
			flush()
			code = true
			i += 6
		case strings.HasPrefix(rest, "</code>"):
			flush()
			code = false
			i += 7
		case strings.HasPrefix(rest, `<a href="`):
			if end := strings.Index(rest, `">`); end > 0 {
				flush()
				link = rest[len(`<a href="`):end]
				i += end + 2
			} else {
				cur.WriteByte('<')
				i++
			}
		case strings.HasPrefix(rest, "</a>"):
			flush()
			link = ""
			i += 4
		default:
			cur.WriteByte('<')
			i++
		}
	}
	flush()
	return out
}

// flattenSpans concatenates span text, dropping styling. Used where the
// target surface cannot flow mixed styles (header banner cells).
func flattenSpans(spans []span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.text)
	}
	return b.String()
}
