package pipeline

import "strings"

// displayCues are structural markers that force block (display) rendering.
// Environments, line breaks, display fractions, explicit display style, and
// large operators all render poorly inline.
var displayCues = []string{
	`\begin{`,
	`\\`,
	"\n",
	`\dfrac`,
	`\displaystyle`,
	`\int`,
	`\sum`,
}

// IsDisplay reports whether the LaTeX fragment should render in display
// (block) mode rather than inline. Pure structural check; the same cues
// drive the compiler's layout mode and a consuming UI's delimiters, keeping
// the two consistent.
func IsDisplay(latex string) bool {
	for _, cue := range displayCues {
		if strings.Contains(latex, cue) {
			return true
		}
	}
	return false
}
