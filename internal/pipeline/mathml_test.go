package pipeline

import (
	"strings"
	"testing"
)

func TestEnsureNamespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "namespace injected when missing",
			input:    `<math><mi>x</mi></math>`,
			expected: `<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`,
		},
		{
			name:     "existing namespace untouched",
			input:    `<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`,
			expected: `<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`,
		},
		{
			name:     "other attributes preserved",
			input:    `<math display="block"><mi>x</mi></math>`,
			expected: `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mi>x</mi></math>`,
		},
		{
			name:     "no math element unchanged",
			input:    `<div>hello</div>`,
			expected: `<div>hello</div>`,
		},
		{
			name:     "empty input unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureNamespace(tt.input); got != tt.expected {
				t.Errorf("EnsureNamespace() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMarkAccents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "literal dot glyph marked",
			input:    `<mover><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
			expected: `<mover accent="true"><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
		},
		{
			name:     "literal double dot glyph marked",
			input:    `<mover><mi>q</mi><mo>` + ddotGlyph + `</mo></mover>`,
			expected: `<mover accent="true"><mi>q</mi><mo>` + ddotGlyph + `</mo></mover>`,
		},
		{
			name:     "numeric entity marked",
			input:    `<mover><mi>x</mi><mo>&#x2D9;</mo></mover>`,
			expected: `<mover accent="true"><mi>x</mi><mo>&#x2D9;</mo></mover>`,
		},
		{
			name:     "named entity marked",
			input:    `<mover><mi>x</mi><mo>&dot;</mo></mover>`,
			expected: `<mover accent="true"><mi>x</mi><mo>&dot;</mo></mover>`,
		},
		{
			name:     "named double dot entity marked",
			input:    `<mover><mi>q</mi><mo>&uml;</mo></mover>`,
			expected: `<mover accent="true"><mi>q</mi><mo>&uml;</mo></mover>`,
		},
		{
			name:     "existing accent attribute untouched",
			input:    `<mover accent="false"><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
			expected: `<mover accent="false"><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
		},
		{
			name:     "overlay without dot glyph untouched",
			input:    `<mover><mi>x</mi><mo>&macr;</mo></mover>`,
			expected: `<mover><mi>x</mi><mo>&macr;</mo></mover>`,
		},
		{
			name:     "other attributes preserved",
			input:    `<mover class="a"><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
			expected: `<mover class="a" accent="true"><mi>x</mi><mo>` + dotGlyph + `</mo></mover>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkAccents(tt.input); got != tt.expected {
				t.Errorf("MarkAccents() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "self-closing none replaced",
			input:    `<mmultiscripts><mi>R</mi><none/><mn>0</mn></mmultiscripts>`,
			expected: `<mmultiscripts><mi>R</mi><mtext>&#x200B;</mtext><mn>0</mn></mmultiscripts>`,
		},
		{
			name:     "spaced self-closing none replaced",
			input:    `<none />`,
			expected: `<mtext>&#x200B;</mtext>`,
		},
		{
			name:     "no placeholder unchanged",
			input:    `<mi>x</mi>`,
			expected: `<mi>x</mi>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplacePlaceholders(tt.input); got != tt.expected {
				t.Errorf("ReplacePlaceholders() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRemoveEmptyNodes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty row removed",
			input:    `<mi>x</mi><mrow></mrow><mi>y</mi>`,
			expected: `<mi>x</mi><mi>y</mi>`,
		},
		{
			name:     "self-closing row removed",
			input:    `<mrow/><mi>x</mi>`,
			expected: `<mi>x</mi>`,
		},
		{
			name:     "empty cell removed",
			input:    `<mtr><mtd></mtd></mtr>`,
			expected: `<mtr></mtr>`,
		},
		{
			name:     "nested empties removed to fixed point",
			input:    `<mtd><mrow></mrow></mtd>`,
			expected: ``,
		},
		{
			name:     "empty text becomes zero-width space",
			input:    `<mtd><mtext></mtext></mtd>`,
			expected: `<mtd><mtext>&#x200B;</mtext></mtd>`,
		},
		{
			name:     "non-empty row kept",
			input:    `<mrow><mi>x</mi></mrow>`,
			expected: `<mrow><mi>x</mi></mrow>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveEmptyNodes(tt.input); got != tt.expected {
				t.Errorf("RemoveEmptyNodes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripLayoutHints(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "display attribute removed",
			input:    `<math display="block"><mi>x</mi></math>`,
			expected: `<math><mi>x</mi></math>`,
		},
		{
			name:     "indent attributes removed",
			input:    `<mstyle indentalign="center" indentshift="2em" indenttarget="t"><mi>x</mi></mstyle>`,
			expected: `<mstyle><mi>x</mi></mstyle>`,
		},
		{
			name:     "indentalign variants removed",
			input:    `<mo indentalignfirst="left" indentalignlast="right">+</mo>`,
			expected: `<mo>+</mo>`,
		},
		{
			name:     "other attributes kept",
			input:    `<math xmlns="ns" mathvariant="bold"><mi>x</mi></math>`,
			expected: `<math xmlns="ns" mathvariant="bold"><mi>x</mi></math>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripLayoutHints(tt.input); got != tt.expected {
				t.Errorf("StripLayoutHints() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPostprocessMathML(t *testing.T) {
	t.Run("all passes applied in order", func(t *testing.T) {
		input := `<math display="block"><mmultiscripts><mi>R</mi><none/><mn>0</mn></mmultiscripts>` +
			`<mover><mi>x</mi><mo>` + dotGlyph + `</mo></mover><mrow></mrow></math>`

		got := PostprocessMathML(input)

		if !strings.Contains(got, `xmlns="`+MathMLNamespace+`"`) {
			t.Errorf("missing namespace in %q", got)
		}
		if !strings.Contains(got, `<mover accent="true">`) {
			t.Errorf("missing accent attribute in %q", got)
		}
		if strings.Contains(got, "<none") {
			t.Errorf("placeholder not replaced in %q", got)
		}
		if strings.Contains(got, "<mrow></mrow>") {
			t.Errorf("empty row not removed in %q", got)
		}
		if strings.Contains(got, `display="block"`) {
			t.Errorf("display attribute not stripped in %q", got)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := PostprocessMathML(""); got != "" {
			t.Errorf("PostprocessMathML(\"\") = %q, want \"\"", got)
		}
	})

	t.Run("pathological input does not panic", func(t *testing.T) {
		inputs := []string{
			"<math", "<mover>", "not markup at all", "<math><mover></math>",
			"<none/><none/><none/>", "<mrow><mrow><mrow>",
		}
		for _, input := range inputs {
			_ = PostprocessMathML(input)
		}
	})

	t.Run("idempotent on cleaned markup", func(t *testing.T) {
		input := `<math><mmultiscripts><mi>R</mi><none/><mn>3</mn><mn>0</mn></mmultiscripts></math>`
		once := PostprocessMathML(input)
		twice := PostprocessMathML(once)
		if once != twice {
			t.Errorf("PostprocessMathML not idempotent:\n once = %q\ntwice = %q", once, twice)
		}
	})
}
