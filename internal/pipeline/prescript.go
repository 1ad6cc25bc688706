package pipeline

import "strings"

// strutPlaceholder keeps vertical alignment when only one side of a
// prescript is present.
const strutPlaceholder = `\mathstrut`

// spacingNoop precedes every rewritten prescript so the construct does not
// fuse with whatever token comes before it.
const spacingNoop = `\hspace{0pt}`

// skipCommands are non-substantive sizing and delimiter commands. A
// left-script match whose base starts with one of these is spurious and is
// copied through unchanged.
var skipCommands = []string{
	`\left`, `\right`, `\big`, `\Big`, `\bigg`, `\Bigg`,
}

// leadInContext lists the characters allowed immediately before a bare _ or ^
// lead-in. Anything else (a letter, a digit, a closing brace) means the
// script trails a base and is not a prescript.
const leadInContext = " \t\n\r([{=+-"

// leftScript is a matched prescript lead-in: the sub and sup values (empty
// when that side is absent) and the offset where the base token begins.
type leftScript struct {
	sub  string
	sup  string
	next int
}

// matchLeftScript recognizes the empty-base prescript notation at start.
// Two lead-ins are accepted: an explicit {} marker, or a bare _ / ^ whose
// preceding character is whitespace, an opening delimiter, =, +, or -.
// At least one script must follow for a match.
func matchLeftScript(s string, start int) (leftScript, bool) {
	i := start
	switch {
	case strings.HasPrefix(s[i:], "{}"):
		i += 2

	case i < len(s) && (s[i] == subScript || s[i] == supScript):
		if start > 0 && !strings.ContainsRune(leadInContext, rune(s[start-1])) {
			return leftScript{}, false
		}

	default:
		return leftScript{}, false
	}

	var m leftScript
	scripts := 0
	for scripts < 2 {
		j := skipSpace(s, i)
		if j >= len(s) || (s[j] != subScript && s[j] != supScript) {
			break
		}
		sc, ok := readScript(s, j)
		if !ok {
			break
		}
		if sc.kind == subScript {
			m.sub = sc.value
		} else {
			m.sup = sc.value
		}
		i = sc.end
		scripts++
	}

	if scripts == 0 {
		return leftScript{}, false
	}
	m.next = i
	return m, true
}

// RewritePrescripts scans the string left to right, replacing every
// left-script match with a prescript construct carrying the superscript,
// the subscript, and the base, in that order. Missing sides get a strut
// placeholder. Bases on the skip list are copied through unchanged.
// Single-pass and greedy; every branch strictly advances the position, so
// the scan terminates on any input.
func RewritePrescripts(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		m, ok := matchLeftScript(s, i)
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}

		base, ok := readBaseToken(s, m.next)
		if !ok {
			// Truncated base: recover by copying one character.
			out.WriteByte(s[i])
			i++
			continue
		}

		if hasSkipPrefix(base.token) {
			out.WriteString(s[i:base.end])
			i = base.end
			continue
		}

		sup, sub := m.sup, m.sub
		if sup == "" {
			sup = strutPlaceholder
		}
		if sub == "" {
			sub = strutPlaceholder
		}

		out.WriteString(base.leading)
		out.WriteString(spacingNoop)
		out.WriteString(`\prescript{` + sup + `}{` + sub + `}{` + base.token + `}`)
		i = base.end
	}

	return out.String()
}

// hasSkipPrefix reports whether the base token's command prefix is one of
// the non-substantive sizing/delimiter commands. The character after the
// prefix must not be a letter, so \lefteqn never matches \left.
func hasSkipPrefix(token string) bool {
	for _, cmd := range skipCommands {
		if !strings.HasPrefix(token, cmd) {
			continue
		}
		if len(token) == len(cmd) || !isLetter(token[len(cmd)]) {
			return true
		}
	}
	return false
}
