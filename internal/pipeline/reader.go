package pipeline

import (
	"strings"
	"unicode/utf8"
)

// Script kinds correspond to the LaTeX attachment characters.
const (
	subScript byte = '_'
	supScript byte = '^'
)

// group is the interior of one balanced {...} span, exclusive of the braces.
// end is the offset just past the closing brace.
type group struct {
	content string
	end     int
}

// script is one _ or ^ attachment: its kind, its value (group content,
// command name, or single character), and the offset just past it.
type script struct {
	kind  byte
	value string
	end   int
}

// baseToken is the unit a prescript or accent attaches to, with any scripts
// already attached to it folded into token. leading records whitespace
// skipped before the base.
type baseToken struct {
	token   string
	leading string
	end     int
}

// Every reader below takes a start offset and returns (descriptor, true)
// with descriptor.end strictly greater than start, or (zero, false) when the
// construct at start is absent or truncated. Readers never consume a partial
// construct.

// readGroup reads one balanced brace group starting at an opening brace.
// A backslash escapes the following character unconditionally, so \{ and \}
// never affect the depth count. Fails on an unterminated group.
func readGroup(s string, start int) (group, bool) {
	if start >= len(s) || s[start] != '{' {
		return group{}, false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip escaped character
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return group{content: s[start+1 : i], end: i + 1}, true
			}
		}
	}
	return group{}, false
}

// readScript reads one _ or ^ attachment starting at the attachment
// character. The value is a brace group's content, a whole command name, or
// a single character. Fails at end of string.
func readScript(s string, start int) (script, bool) {
	if start >= len(s) || (s[start] != subScript && s[start] != supScript) {
		return script{}, false
	}

	kind := s[start]
	i := skipSpace(s, start+1)
	if i >= len(s) {
		return script{}, false
	}

	switch {
	case s[i] == '{':
		g, ok := readGroup(s, i)
		if !ok {
			return script{}, false
		}
		return script{kind: kind, value: g.content, end: g.end}, true

	case s[i] == '\\':
		if end := commandEnd(s, i); end > i+1 {
			return script{kind: kind, value: s[i:end], end: end}, true
		}
	}

	// Single character value.
	_, size := utf8.DecodeRuneInString(s[i:])
	return script{kind: kind, value: s[i : i+size], end: i + size}, true
}

// readBaseToken reads the unit following a left-script lead-in: a command
// with an optional brace-group argument, a standalone brace group, or a
// single character. Any scripts already attached to the base are absorbed
// and re-encoded as kind{value}, preserving trailing notation like x_1^2.
// Fails only when the end of string prevents reading any base.
func readBaseToken(s string, start int) (baseToken, bool) {
	i := skipSpace(s, start)
	leading := s[start:i]
	if i >= len(s) {
		return baseToken{}, false
	}
	if s[i] == subScript || s[i] == supScript {
		// A script attachment cannot be a base; this happens on truncated
		// input like {}_{3}^{0 where the matcher stopped short.
		return baseToken{}, false
	}

	var token string
	switch {
	case s[i] == '\\':
		if end := commandEnd(s, i); end > i+1 {
			token = s[i:end]
			i = end
			if g, ok := readGroup(s, i); ok {
				token += s[i:g.end]
				i = g.end
			}
		} else {
			// Escaped symbol like \% counts as a two-character base.
			if i+1 >= len(s) {
				return baseToken{}, false
			}
			token = s[i : i+2]
			i += 2
		}

	case s[i] == '{':
		g, ok := readGroup(s, i)
		if !ok {
			return baseToken{}, false
		}
		token = s[i:g.end]
		i = g.end

	default:
		_, size := utf8.DecodeRuneInString(s[i:])
		token = s[i : i+size]
		i += size
	}

	// Absorb scripts attached to the base so they stay with it after the
	// prescript is moved in front.
	for {
		j := skipSpace(s, i)
		if j >= len(s) || (s[j] != subScript && s[j] != supScript) {
			break
		}
		sc, ok := readScript(s, j)
		if !ok {
			break
		}
		token += string(sc.kind) + "{" + sc.value + "}"
		i = sc.end
	}

	return baseToken{token: token, leading: leading, end: i}, true
}

// commandEnd returns the offset just past a \name command starting at a
// backslash. Returns start+1 when no letters follow the backslash.
func commandEnd(s string, start int) int {
	i := start + 1
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return i
}

// skipSpace returns the first offset at or after i that is not whitespace.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// stripOuterBraces unwraps a token that is exactly one balanced brace group,
// so constructs like \overset{..}{{\theta}} come out as {\theta} -> \theta.
// Tokens with absorbed scripts ({xy}_{1}) are left alone.
func stripOuterBraces(token string) string {
	if !strings.HasPrefix(token, "{") {
		return token
	}
	g, ok := readGroup(token, 0)
	if !ok || g.end != len(token) {
		return token
	}
	return g.content
}
