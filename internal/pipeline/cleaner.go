package pipeline

import (
	"regexp"
	"strings"
)

// whitespaceRun matches runs of whitespace inside text blocks.
var whitespaceRun = regexp.MustCompile(`\s+`)

// textCommands wrap literal text inside math mode. Their whitespace is
// significant to the compiler, so runs are collapsed before compilation.
var textCommands = []string{`\text`, `\textrm`, `\mbox`}

// Clean applies the environment and bold cleanup substitutions to raw LaTeX.
// The three substitutions are independent and order-insensitive: remove
// \limits, rewrite \bm to \mathbf, and normalize whitespace inside text
// blocks. Runs before prescript and derivative rewriting.
func Clean(latex string) string {
	latex = cleanLimits(latex)
	latex = cleanBold(latex)
	latex = cleanTextBlocks(latex)
	return latex
}

// cleanLimits removes every \limits command. \limits modifies script
// placement on operators; the compiler backends do not support it. The
// command is almost always followed by _ or ^, which end a command name
// just like any other non-letter.
func cleanLimits(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		if commandAt(s, i, `\limits`) {
			i += len(`\limits`)
			continue
		}
		out.WriteByte(s[i])
		i++
	}

	return out.String()
}

// cleanBold rewrites the \bm shorthand into \mathbf. The braced form keeps
// its group (nested braces honored via the group reader); the single-letter
// form gains one.
func cleanBold(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		if !commandAt(s, i, `\bm`) {
			out.WriteByte(s[i])
			i++
			continue
		}

		j := skipSpace(s, i+len(`\bm`))
		switch {
		case j < len(s) && s[j] == '{':
			if _, ok := readGroup(s, j); ok {
				// Rewrite the command and step into the group; its closing
				// brace is copied by the main loop.
				out.WriteString(`\mathbf{`)
				i = j + 1
				continue
			}

		case j < len(s) && isLetter(s[j]):
			out.WriteString(`\mathbf{` + string(s[j]) + `}`)
			i = j + 1
			continue
		}

		// No usable argument: copy the command verbatim.
		out.WriteString(`\bm`)
		i += len(`\bm`)
	}

	return out.String()
}

// cleanTextBlocks collapses whitespace runs inside text-block arguments to a
// single space and trims the ends. An empty block stays an explicit empty
// block rather than disappearing.
func cleanTextBlocks(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		cmd, ok := textCommandAt(s, i)
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}

		j := skipSpace(s, i+len(cmd))
		g, gok := readGroup(s, j)
		if !gok {
			out.WriteString(cmd)
			i += len(cmd)
			continue
		}

		content := whitespaceRun.ReplaceAllString(strings.TrimSpace(g.content), " ")
		out.WriteString(cmd + "{" + content + "}")
		i = g.end
	}

	return out.String()
}

// textCommandAt returns the text-block command starting at i, if any.
func textCommandAt(s string, i int) (string, bool) {
	for _, cmd := range textCommands {
		if commandAt(s, i, cmd) {
			return cmd, true
		}
	}
	return "", false
}

// commandAt reports whether the command cmd starts at i and is not a prefix
// of a longer command name.
func commandAt(s string, i int, cmd string) bool {
	if !strings.HasPrefix(s[i:], cmd) {
		return false
	}
	next := i + len(cmd)
	return next >= len(s) || !isLetter(s[next])
}
