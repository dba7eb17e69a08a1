package resumepdf

import (
	"fmt"
	"strings"
)

// pt formats a point value for CSS, trimming trailing zeros.
func pt(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + "pt"
}

// buildResumeCSS generates the complete stylesheet for the HTML+print
// engine from the resolved Stylesheet and page setup. All sizes derive from
// the dynamic sizing policy, so one-page compression applies uniformly to
// the whole document.
func buildResumeCSS(setup PageSetup) string {
	st := setup.Style
	sz := st.Sizing
	pal := st.Palette

	lineHeight := "1.3"
	if st.OnePage {
		lineHeight = "1.2"
	}

	banner := st.HeaderColor.Hex()
	bannerFg := "#ffffff"
	if st.WhiteHeader {
		banner = pal.Card.Hex()
		bannerFg = pal.Fg.Hex()
	}

	var b strings.Builder

	fmt.Fprintf(&b, `@page {
  size: letter;
  margin: %.2fin;
}

body {
  font-family: %s;
  font-size: %s;
  line-height: %s;
  color: %s;
  background: %s;
  margin: 0;
  padding: 0;
}
`, setup.MarginIn, st.Faces.CSSStack, pt(sz.Base), lineHeight, pal.Fg.Hex(), pal.Bg.Hex())

	fmt.Fprintf(&b, `
.header {
  background: %s;
  color: %s;
  text-align: center;
  padding: 8pt 12pt;
  margin-bottom: %s;
}

.header h1 {
  font-size: %s;
  font-weight: bold;
  margin: 0 0 %s 0;
  letter-spacing: 0.5pt;
}

.header .title {
  font-size: %s;
  font-style: italic;
  margin: 0 0 %s 0;
}

.header .contact {
  font-size: %s;
  margin: 0;
}
`, banner, bannerFg,
		cssSpacing(st.OnePage, 6, 15),
		pt(sz.Name), cssSpacing(st.OnePage, 2, 6),
		pt(sz.Base), cssSpacing(st.OnePage, 2, 6),
		pt(sz.Small))

	fmt.Fprintf(&b, `
h2 {
  font-size: %s;
  font-weight: bold;
  color: %s;
  margin: %s 0 %s 0;
  padding-bottom: 2pt;
  border-bottom: 1pt solid %s;
  text-transform: uppercase;
  letter-spacing: 0.5pt;
}

.company {
  font-size: %s;
  font-weight: bold;
  margin: 0 0 1pt 0;
}

.date-location {
  font-size: %s;
  font-style: italic;
  color: %s;
  margin: 0 0 %s 0;
}

p, li {
  font-size: %s;
  margin: 0 0 %s 0;
  text-align: justify;
  orphans: 2;
  widows: 2;
}

ul {
  margin: 0 0 %s 0;
  padding-left: 16pt;
}

a {
  color: %s;
  text-decoration: none;
}

code {
  font-family: "Courier New", monospace;
  font-size: %s;
}
`, pt(sz.Section), pal.Fg.Hex(),
		cssSpacing(st.OnePage, 4, 12), cssSpacing(st.OnePage, 2, 6),
		pal.Accent.Hex(),
		pt(sz.Base),
		pt(sz.Small), pal.Muted.Hex(), cssSpacing(st.OnePage, 2, 6),
		pt(sz.Base-0.5), cssSpacing(st.OnePage, 1.5, 4),
		cssSpacing(st.OnePage, 2, 6),
		pal.Link.Hex(),
		pt(sz.Small))

	// Dark mode prints the page background; Chrome needs an explicit
	// full-bleed fill since @page backgrounds are not printed.
	if st.Dark {
		fmt.Fprintf(&b, `
html {
  background: %s;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
`, pal.Bg.Hex())
	}

	return b.String()
}

// cssSpacing picks the compact or roomy spacing value in points.
func cssSpacing(onePage bool, compact, roomy float64) string {
	if onePage {
		return pt(compact)
	}
	return pt(roomy)
}
