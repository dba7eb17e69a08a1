package resumepdf

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// htmlShell wraps the generated body in a complete HTML5 document.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>`

// inlineRenderer converts single Markdown lines to inline HTML using
// goldmark. The HTML+print path leans on a real Markdown converter instead
// of the hand-rolled span translator used by the direct engine.
type inlineRenderer struct {
	md goldmark.Markdown
}

// newInlineRenderer creates a goldmark instance with GFM and syntax
// highlighting for inline code spans and fenced blocks.
func newInlineRenderer() *inlineRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("friendly"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithXHTML(),
		),
	)
	return &inlineRenderer{md: md}
}

// Render converts one line of Markdown to an inline HTML fragment,
// unwrapping the paragraph tags goldmark adds around a single line. On
// conversion failure the line is escaped verbatim; a single malformed line
// never fails the whole document.
func (r *inlineRenderer) Render(line string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(line), &buf); err != nil {
		return html.EscapeString(line)
	}
	frag := strings.TrimSpace(buf.String())
	frag = strings.TrimPrefix(frag, "<p>")
	frag = strings.TrimSuffix(frag, "</p>")
	return frag
}

// htmlBuilder accumulates blocks into the HTML body for the chrome engine.
type htmlBuilder struct {
	inline *inlineRenderer
	body   strings.Builder
	inList bool
}

func newHTMLBuilder() *htmlBuilder {
	return &htmlBuilder{inline: newInlineRenderer()}
}

// closeList terminates an open <ul> before a non-bullet block.
func (h *htmlBuilder) closeList() {
	if h.inList {
		h.body.WriteString("</ul>\n")
		h.inList = false
	}
}

// addBlock renders one block into the body.
func (h *htmlBuilder) addBlock(block Block) {
	switch b := block.(type) {
	case HeaderBlock:
		h.closeList()
		h.body.WriteString(`<div class="header">` + "\n")
		fmt.Fprintf(&h.body, "<h1>%s</h1>\n", html.EscapeString(b.Name))
		if b.Title != "" {
			fmt.Fprintf(&h.body, `<p class="title">%s</p>`+"\n", html.EscapeString(b.Title))
		}
		for _, line := range b.ContactLines {
			fmt.Fprintf(&h.body, `<p class="contact">%s</p>`+"\n", h.inline.Render(line))
		}
		h.body.WriteString("</div>\n")

	case TextBlock:
		if b.Bullet {
			if !h.inList {
				h.body.WriteString("<ul>\n")
				h.inList = true
			}
			fmt.Fprintf(&h.body, "<li>%s</li>\n", h.inline.Render(b.Text))
			return
		}
		h.closeList()
		switch b.Role {
		case RoleSectionHeader:
			fmt.Fprintf(&h.body, "<h2>%s</h2>\n", html.EscapeString(b.Text))
		case RoleCompany, RoleJobTitle:
			fmt.Fprintf(&h.body, `<p class="company">%s</p>`+"\n", h.inline.Render(b.Text))
		case RoleDateLocation:
			fmt.Fprintf(&h.body, `<p class="date-location">%s</p>`+"\n", html.EscapeString(b.Text))
		default:
			fmt.Fprintf(&h.body, "<p>%s</p>\n", h.inline.Render(b.Text))
		}

	case SpacerBlock:
		h.closeList()
		fmt.Fprintf(&h.body, `<div style="height:%s"></div>`+"\n", pt(b.Pt))
	}
}

// document assembles the final HTML5 document with the given CSS.
func (h *htmlBuilder) document(css string) string {
	h.closeList()
	return fmt.Sprintf(htmlShell, css, h.body.String())
}
