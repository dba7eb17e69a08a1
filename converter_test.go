package resumepdf

import (
	"context"
	"errors"
	"testing"
)

const sampleResume = `# Jane Roe

jane@roe.dev | (555) 123-4567

**Platform Engineer**

## Skills

Go, SQL, Kubernetes

## Experience

**Acme Corp**
*Jan 2020 - Present | Remote*
- Built the deployment platform

## Education

**State University**
*2012 - 2016 | Springfield*
`

// fakeEngine records the blocks it receives and returns canned output.
type fakeEngine struct {
	beginErr error
	output   []byte
	html     string

	began     bool
	finalized bool
	closed    bool
	setup     PageSetup
	blocks    []Block
}

func (f *fakeEngine) Begin(setup PageSetup) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.began = true
	f.setup = setup
	return nil
}

func (f *fakeEngine) Add(block Block) error {
	f.blocks = append(f.blocks, block)
	return nil
}

func (f *fakeEngine) Finalize() ([]byte, error) {
	f.finalized = true
	return f.output, nil
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func (f *fakeEngine) HTML() string { return f.html }

func TestConvertValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty markdown",
			input:   Input{},
			wantErr: ErrEmptyMarkdown,
		},
		{
			name:    "unknown engine",
			input:   Input{Markdown: "# X", Engine: "latex"},
			wantErr: ErrUnknownEngine,
		},
		{
			name:    "invalid theme",
			input:   Input{Markdown: "# X", Theme: "sepia"},
			wantErr: ErrInvalidTheme,
		},
		{
			name:    "invalid font scheme",
			input:   Input{Markdown: "# X", FontScheme: "wingdings"},
			wantErr: ErrInvalidFontScheme,
		},
		{
			name:    "invalid header color",
			input:   Input{Markdown: "# X", HeaderColor: "mauve"},
			wantErr: ErrInvalidHeaderColor,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewConverter(
				WithChromeEngine(&fakeEngine{}),
				WithDirectEngine(&fakeEngine{}),
			)
			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertExplicitEngines(t *testing.T) {
	t.Parallel()

	t.Run("fpdf engine selected", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{output: []byte("chrome")}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		res, err := conv.Convert(context.Background(), Input{Markdown: sampleResume, Engine: EngineFPDF})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if string(res.PDF) != "direct" {
			t.Errorf("PDF = %q, want direct engine output", res.PDF)
		}
		if chrome.began {
			t.Error("chrome engine should not run with explicit fpdf selection")
		}
	})

	t.Run("chrome engine selected", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{output: []byte("chrome"), html: "<html></html>"}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		res, err := conv.Convert(context.Background(), Input{Markdown: sampleResume, Engine: EngineChrome})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if string(res.PDF) != "chrome" {
			t.Errorf("PDF = %q, want chrome engine output", res.PDF)
		}
		if string(res.HTML) != "<html></html>" {
			t.Errorf("HTML = %q, want intermediate HTML", res.HTML)
		}
		if direct.began {
			t.Error("direct engine should not run with explicit chrome selection")
		}
	})

	t.Run("explicit chrome does not fall back", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{beginErr: ErrBackendUnavailable}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		_, err := conv.Convert(context.Background(), Input{Markdown: sampleResume, Engine: EngineChrome})
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("Convert error = %v, want ErrBackendUnavailable", err)
		}
		if direct.began {
			t.Error("explicit chrome selection must not fall back")
		}
	})
}

func TestConvertAutoFallback(t *testing.T) {
	t.Parallel()

	t.Run("falls back when backend unavailable", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{beginErr: ErrBackendUnavailable}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		res, err := conv.Convert(context.Background(), Input{Markdown: sampleResume})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if string(res.PDF) != "direct" {
			t.Errorf("PDF = %q, want fallback engine output", res.PDF)
		}
	})

	t.Run("other chrome errors do not fall back", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{beginErr: errors.New("page crashed")}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		_, err := conv.Convert(context.Background(), Input{Markdown: sampleResume})
		if err == nil {
			t.Fatal("expected error")
		}
		if direct.began {
			t.Error("non-availability errors must not trigger fallback")
		}
	})

	t.Run("chrome preferred when available", func(t *testing.T) {
		t.Parallel()

		chrome := &fakeEngine{output: []byte("chrome")}
		direct := &fakeEngine{output: []byte("direct")}
		conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

		res, err := conv.Convert(context.Background(), Input{Markdown: sampleResume})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if string(res.PDF) != "chrome" {
			t.Errorf("PDF = %q, want chrome output", res.PDF)
		}
	})
}

func TestConvertPipeline(t *testing.T) {
	t.Parallel()

	direct := &fakeEngine{output: []byte("pdf")}
	conv := NewConverter(WithChromeEngine(&fakeEngine{}), WithDirectEngine(direct))

	_, err := conv.Convert(context.Background(), Input{
		Markdown: sampleResume,
		Engine:   EngineFPDF,
		OnePage:  true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if direct.setup.MarginIn != 0.3 {
		t.Errorf("one-page margin = %v, want 0.3", direct.setup.MarginIn)
	}
	if !direct.setup.Style.OnePage {
		t.Error("stylesheet should be in one-page mode")
	}

	// Sections arrive reordered: Experience before Education before Skills.
	var sectionOrder []string
	for _, b := range direct.blocks {
		if tb, ok := b.(TextBlock); ok && tb.Role == RoleSectionHeader {
			sectionOrder = append(sectionOrder, tb.Text)
		}
	}
	want := []string{"Experience", "Education", "Skills"}
	if len(sectionOrder) != len(want) {
		t.Fatalf("section headers = %v, want %v", sectionOrder, want)
	}
	for i := range want {
		if sectionOrder[i] != want[i] {
			t.Errorf("section[%d] = %q, want %q", i, sectionOrder[i], want[i])
		}
	}

	// The header block leads the document.
	if _, ok := direct.blocks[0].(HeaderBlock); !ok {
		t.Errorf("blocks[0] = %T, want HeaderBlock", direct.blocks[0])
	}
}

func TestConvertHTMLOnly(t *testing.T) {
	t.Parallel()

	chrome := &fakeEngine{output: []byte("pdf"), html: "<html>x</html>"}
	conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(&fakeEngine{}))

	res, err := conv.Convert(context.Background(), Input{
		Markdown: sampleResume,
		Engine:   EngineChrome,
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(res.PDF) != 0 {
		t.Errorf("HTMLOnly should skip PDF generation, got %d bytes", len(res.PDF))
	}
	if string(res.HTML) != "<html>x</html>" {
		t.Errorf("HTML = %q", res.HTML)
	}
	if chrome.finalized {
		t.Error("Finalize should not run in HTMLOnly mode")
	}
}

func TestConvertContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := NewConverter(WithChromeEngine(&fakeEngine{}), WithDirectEngine(&fakeEngine{}))
	_, err := conv.Convert(ctx, Input{Markdown: sampleResume})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert error = %v, want context.Canceled", err)
	}
}

func TestConverterClose(t *testing.T) {
	t.Parallel()

	chrome := &fakeEngine{}
	direct := &fakeEngine{}
	conv := NewConverter(WithChromeEngine(chrome), WithDirectEngine(direct))

	if err := conv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !chrome.closed || !direct.closed {
		t.Error("Close should close both engines")
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	WithTimeout(0)
}

func TestValidateEngine(t *testing.T) {
	t.Parallel()

	for _, name := range []string{EngineAuto, EngineChrome, EngineFPDF, "AUTO", "Chrome"} {
		if err := validateEngine(name); err != nil {
			t.Errorf("validateEngine(%q) = %v, want nil", name, err)
		}
	}
	if err := validateEngine("latex"); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("validateEngine(latex) = %v, want ErrUnknownEngine", err)
	}
}
