package resumepdf

import "testing"

func TestTranslateInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "shipped **fast**",
			expected: "shipped <b>fast</b>",
		},
		{
			name:     "star italic",
			input:    "written in *Go*",
			expected: "written in <i>Go</i>",
		},
		{
			name:     "underscore italic at word boundary",
			input:    "see _notes_ below",
			expected: "see <i>notes</i> below",
		},
		{
			name:     "underscore inside word untouched",
			input:    "snake_case_name",
			expected: "snake_case_name",
		},
		{
			name:     "adjacent underscore spans each substituted",
			input:    "a _x_ _y_ b",
			expected: "a <i>x</i> <i>y</i> b",
		},
		{
			name:     "three consecutive underscore spans",
			input:    "_one_ _two_ _three_",
			expected: "<i>one</i> <i>two</i> <i>three</i>",
		},
		{
			name:     "rejected span does not swallow the next one",
			input:    "a_x _y_",
			expected: "a_x <i>y</i>",
		},
		{
			name:     "code span",
			input:    "run `go vet` often",
			expected: "run <code>go vet</code> often",
		},
		{
			name:     "link",
			input:    "[Acme](https://acme.test)",
			expected: `<a href="https://acme.test">Acme</a>`,
		},
		{
			name:     "bold italic underscore outside",
			input:    "_**both**_",
			expected: "<b><i>both</i></b>",
		},
		{
			name:     "bold italic star outside",
			input:    "**_both_**",
			expected: "<b><i>both</i></b>",
		},
		{
			name:     "link label with emphasis characters",
			input:    "[my_project](https://git.test/my_project)",
			expected: `<a href="https://git.test/my_project">my_project</a>`,
		},
		{
			name:     "multiple spans in one line",
			input:    "**Go** and *Rust* and `C`",
			expected: "<b>Go</b> and <i>Rust</i> and <code>C</code>",
		},
		{
			name:     "plain text unchanged",
			input:    "nothing special here",
			expected: "nothing special here",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateInline(tt.input)
			if got != tt.expected {
				t.Errorf("TranslateInline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Translating already-translated text is a no-op.
func TestTranslateInlineIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"**Go** and *Rust* and `C`",
		"[Acme](https://acme.test) at _night_",
		"_**both**_ styles",
		"plain",
	}

	for _, in := range inputs {
		once := TranslateInline(in)
		twice := TranslateInline(once)
		if twice != once {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
