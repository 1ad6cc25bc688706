package pipeline

import "strings"

// Accent glyphs placed above a derivative's target.
const (
	dotGlyph  = "˙" // dot above
	ddotGlyph = "¨" // diaeresis
)

// derivativeCommand is a matched \dot or \ddot: the derivative order and the
// offset where the accented target begins.
type derivativeCommand struct {
	order int
	next  int
}

// matchDerivative detects \dot or \ddot at start. The following character
// must not be a letter, so \dots and \ddots never match.
func matchDerivative(s string, start int) (derivativeCommand, bool) {
	for _, c := range []struct {
		name  string
		order int
	}{
		{`\ddot`, 2},
		{`\dot`, 1},
	} {
		if !strings.HasPrefix(s[start:], c.name) {
			continue
		}
		next := start + len(c.name)
		if next < len(s) && isLetter(s[next]) {
			continue
		}
		return derivativeCommand{order: c.order, next: next}, true
	}
	return derivativeCommand{}, false
}

// RewriteDerivatives replaces \dot and \ddot with an overlay placing a
// single- or double-dot glyph above the accented target. Runs as a full
// left-to-right pass over the already prescript-rewritten string, so targets
// that themselves contain prescripts are read whole. When no target can be
// read, the command text is copied verbatim.
func RewriteDerivatives(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		d, ok := matchDerivative(s, i)
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}

		target, ok := readBaseToken(s, d.next)
		if !ok {
			out.WriteString(s[i:d.next])
			i = d.next
			continue
		}

		glyph := dotGlyph
		if d.order == 2 {
			glyph = ddotGlyph
		}
		out.WriteString(`\overset{` + glyph + `}{` + stripOuterBraces(target.token) + `}`)
		i = target.end
	}

	return out.String()
}
