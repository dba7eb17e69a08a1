package resumepdf

import (
	"strings"
	"testing"
)

func TestPt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    float64
		expected string
	}{
		{8.5, "8.5pt"},
		{10, "10pt"},
		{1.234, "1.23pt"}, // rounded to two decimals
		{0, "0pt"},
	}

	for _, tt := range tests {
		tt := tt
		if got := pt(tt.value); got != tt.expected {
			t.Errorf("pt(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestBuildResumeCSS(t *testing.T) {
	t.Parallel()

	sz := SizingFor(1500, true, nil)

	t.Run("light one-page", func(t *testing.T) {
		t.Parallel()

		st, err := BuildStylesheet(sz, "", "", "", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		css := buildResumeCSS(pageSetupFor(st))

		for _, want := range []string{
			"size: letter;",
			"margin: 0.30in;",
			"font-size: 8.5pt;",     // body at uncompressed base
			"background: #4a6741;",  // header banner
			"text-transform: uppercase;",
			"orphans: 2;",
			"widows: 2;",
			"line-height: 1.2;",
		} {
			if !strings.Contains(css, want) {
				t.Errorf("css missing %q", want)
			}
		}
		if strings.Contains(css, "print-color-adjust") {
			t.Error("light theme should not force print color adjust")
		}
	})

	t.Run("dark multi-page", func(t *testing.T) {
		t.Parallel()

		mp := SizingFor(1500, false, nil)
		st, err := BuildStylesheet(mp, ThemeDark, "", "", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		css := buildResumeCSS(pageSetupFor(st))

		for _, want := range []string{
			"margin: 0.75in;",
			"line-height: 1.3;",
			"print-color-adjust: exact;",
			darkPalette.Bg.Hex(),
		} {
			if !strings.Contains(css, want) {
				t.Errorf("css missing %q", want)
			}
		}
	})

	t.Run("white header uses card background", func(t *testing.T) {
		t.Parallel()

		st, err := BuildStylesheet(sz, "", "", HeaderColorWhite, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		css := buildResumeCSS(pageSetupFor(st))

		if strings.Contains(css, "background: #4a6741;") {
			t.Error("white header should not paint the default banner color")
		}
	})

	t.Run("serif scheme flows into body font", func(t *testing.T) {
		t.Parallel()

		st, err := BuildStylesheet(sz, "", FontSerif, "", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		css := buildResumeCSS(pageSetupFor(st))

		if !strings.Contains(css, "Georgia") {
			t.Error("serif scheme should use the Georgia stack")
		}
	})
}
