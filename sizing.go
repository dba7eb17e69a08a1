package resumepdf

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Patterns for content density estimation.
var (
	markdownPunct  = regexp.MustCompile(`[#*\-\[\]()]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// EstimateDensity returns the content density of a Markdown document: the
// character count after stripping Markdown punctuation and collapsing
// whitespace runs. Characters are counted as code points, so accented names
// and typographic dashes weigh the same as ASCII. Density is a proxy for how
// much content must fit on the page; it is monotonic in input length, so
// concatenating content never decreases it.
func EstimateDensity(content string) int {
	text := markdownPunct.ReplaceAllString(content, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// SizingParameters holds the four font size roles derived from content
// density, plus the scale factor that produced them. All sizes are points.
type SizingParameters struct {
	Base    float64 // body text
	Name    float64 // candidate name
	Section float64 // section headers
	Small   float64 // meta text (contact, dates)
	Scale   float64 // 1.0 in multi-page mode
}

// SizeBand maps a density ceiling to a scale factor. Bands are evaluated in
// order; the first band whose MaxDensity is >= the measured density applies.
// A MaxDensity of 0 marks the terminal band matching everything above the
// previous ceiling.
type SizeBand struct {
	MaxDensity int
	Scale      float64
}

// DefaultOnePageBands is the one-page compression table: a monotonically
// non-increasing step function from density to scale factor. Around 2500
// characters is comfortable on one US Letter page; past 5000 the layout is
// very tight and bottoms out at 0.55.
var DefaultOnePageBands = []SizeBand{
	{MaxDensity: 2000, Scale: 1.0},
	{MaxDensity: 2500, Scale: 0.95},
	{MaxDensity: 3000, Scale: 0.90},
	{MaxDensity: 3500, Scale: 0.85},
	{MaxDensity: 4200, Scale: 0.75},
	{MaxDensity: 5000, Scale: 0.65},
	{MaxDensity: 0, Scale: 0.55},
}

// onePageBase is the uncompressed size set for one-page mode, multiplied by
// the band scale.
var onePageBase = SizingParameters{Base: 8.5, Name: 14, Section: 10, Small: 7.5, Scale: 1.0}

// SizeTier is one discrete multi-page size set, keyed by a density ceiling.
// As with SizeBand, a MaxDensity of 0 marks the terminal tier.
type SizeTier struct {
	MaxDensity int
	Sizes      SizingParameters
}

// DefaultMultiPageTiers are the three discrete multi-page size sets. Unlike
// one-page mode there is no continuous scaling; the document simply flows
// onto more pages, stepping sizes down slightly for very long resumes.
var DefaultMultiPageTiers = []SizeTier{
	{MaxDensity: 3000, Sizes: SizingParameters{Base: 11, Name: 20, Section: 14, Small: 9, Scale: 1.0}},
	{MaxDensity: 6000, Sizes: SizingParameters{Base: 10.5, Name: 19, Section: 13.5, Small: 8.5, Scale: 1.0}},
	{MaxDensity: 0, Sizes: SizingParameters{Base: 10, Name: 18, Section: 13, Small: 8, Scale: 1.0}},
}

// ScaleFor returns the one-page scale factor for the given density using
// the supplied band table (DefaultOnePageBands when nil). The result is
// monotonically non-increasing in density.
func ScaleFor(density int, bands []SizeBand) float64 {
	if len(bands) == 0 {
		bands = DefaultOnePageBands
	}
	for _, b := range bands {
		if b.MaxDensity == 0 || density <= b.MaxDensity {
			return b.Scale
		}
	}
	return bands[len(bands)-1].Scale
}

// SizingFor computes the sizing parameters for a document of the given
// density. In one-page mode the band scale is applied multiplicatively to
// the base size roles; in multi-page mode one of the discrete tiers is
// returned. Pure function of its inputs: this is a predictive heuristic,
// not an iterative fit-to-page solver.
func SizingFor(density int, onePage bool, bands []SizeBand) SizingParameters {
	if !onePage {
		for _, t := range DefaultMultiPageTiers {
			if t.MaxDensity == 0 || density <= t.MaxDensity {
				return t.Sizes
			}
		}
	}

	scale := ScaleFor(density, bands)
	return SizingParameters{
		Base:    onePageBase.Base * scale,
		Name:    onePageBase.Name * scale,
		Section: onePageBase.Section * scale,
		Small:   onePageBase.Small * scale,
		Scale:   scale,
	}
}
