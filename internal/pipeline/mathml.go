package pipeline

import (
	"regexp"
	"strings"
)

// MathMLNamespace is the standard namespace for MathML markup.
const MathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// zeroWidthSpace replaces placeholder and empty nodes that must keep their
// position in argument lists and table structure.
const zeroWidthSpace = "&#x200B;"

// Precompiled regex patterns for performance.
var (
	// Root math element.
	mathOpenTag = regexp.MustCompile(`<math\b[^>]*>`)

	// Accent overlay elements. Non-greedy, so nested overlays are visited
	// innermost-close first; adequate for compiler output.
	moverElement = regexp.MustCompile(`(?s)<mover\b[^>]*>.*?</mover>`)

	// Self-closing "none" placeholder used in prescript argument lists.
	nonePlaceholder = regexp.MustCompile(`<none\s*/>`)

	// Empty rows and table cells.
	emptyRow  = regexp.MustCompile(`<mrow\s*/>|<mrow>\s*</mrow>`)
	emptyCell = regexp.MustCompile(`<mtd\s*/>|<mtd>\s*</mtd>`)

	// Empty text elements inside tables collapse cell layout if removed.
	emptyText = regexp.MustCompile(`<mtext\s*/>|<mtext>\s*</mtext>`)

	// Layout-hint attributes not honored by downstream consumers.
	layoutHintAttrs = regexp.MustCompile(`\s(?:display|indentalign|indentalignfirst|indentalignlast|indentshift|indenttarget)="[^"]*"`)
)

// accentGlyphs are the dot and double-dot forms that mark a derivative
// overlay: literal Unicode, numeric entity, and two named entities each.
var accentGlyphs = []string{
	dotGlyph, "&#x2D9;", "&dot;", "&DiacriticalDot;",
	ddotGlyph, "&#xA8;", "&die;", "&uml;",
}

// PostprocessMathML applies the ordered cleanup passes to markup produced by
// the external TeX-to-MathML compiler. Order matters: accent marking
// inspects glyph content that later passes may alter. Total and pure; the
// output is well formed even when the input is pathological.
func PostprocessMathML(raw string) string {
	if raw == "" {
		return ""
	}

	raw = EnsureNamespace(raw)
	raw = MarkAccents(raw)
	raw = ReplacePlaceholders(raw)
	raw = RemoveEmptyNodes(raw)
	raw = StripLayoutHints(raw)
	return raw
}

// EnsureNamespace injects the MathML namespace attribute on the root math
// element when the compiler omitted it.
func EnsureNamespace(markup string) string {
	loc := mathOpenTag.FindStringIndex(markup)
	if loc == nil {
		return markup
	}
	if strings.Contains(markup[loc[0]:loc[1]], "xmlns=") {
		return markup
	}

	insert := loc[0] + len("<math")
	return markup[:insert] + ` xmlns="` + MathMLNamespace + `"` + markup[insert:]
}

// MarkAccents adds an explicit accent attribute to every overlay element
// whose content contains a dot or double-dot glyph. Renderers otherwise
// treat the glyph as a full-height operator and misplace it.
func MarkAccents(markup string) string {
	return moverElement.ReplaceAllStringFunc(markup, func(el string) string {
		openEnd := strings.IndexByte(el, '>')
		if openEnd == -1 {
			return el
		}
		openTag, content := el[:openEnd], el[openEnd:]

		if strings.Contains(openTag, "accent=") {
			return el
		}
		if !containsAccentGlyph(content) {
			return el
		}
		return openTag + ` accent="true"` + content
	})
}

// ReplacePlaceholders turns self-closing "none" placeholders into
// zero-width-space text nodes. Never deleted: prescript argument lists are
// positional, and dropping a placeholder shifts every following argument.
func ReplacePlaceholders(markup string) string {
	return nonePlaceholder.ReplaceAllString(markup, "<mtext>"+zeroWidthSpace+"</mtext>")
}

// RemoveEmptyNodes removes empty row and table-cell elements. Empty text
// elements are replaced with a zero-width space instead, to avoid collapsing
// table structure. Runs to a fixed point so rows left empty by an inner
// removal disappear too.
func RemoveEmptyNodes(markup string) string {
	for {
		next := emptyRow.ReplaceAllString(markup, "")
		next = emptyCell.ReplaceAllString(next, "")
		if next == markup {
			break
		}
		markup = next
	}
	return emptyText.ReplaceAllString(markup, "<mtext>"+zeroWidthSpace+"</mtext>")
}

// StripLayoutHints removes layout-hint attributes (display and the indent
// family) that downstream editors do not honor.
func StripLayoutHints(markup string) string {
	return layoutHintAttrs.ReplaceAllString(markup, "")
}

// containsAccentGlyph reports whether the content carries a derivative dot
// glyph in any of its literal, numeric-entity, or named-entity forms.
func containsAccentGlyph(content string) bool {
	for _, glyph := range accentGlyphs {
		if strings.Contains(content, glyph) {
			return true
		}
	}
	return false
}
