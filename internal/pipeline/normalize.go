package pipeline

// Normalize rewrites a raw LaTeX fragment into the canonical form expected
// by the compiler backends. Order matters: cleanup first, then prescript
// rewriting, then derivative rewriting. The derivative pass must see
// already-rewritten text so it can read accent targets that themselves
// contain prescripts.
//
// Total and deterministic: malformed constructs are copied through
// unmodified, and an empty input yields an empty output without running any
// pass.
func Normalize(latex string) string {
	if latex == "" {
		return ""
	}

	latex = Clean(latex)
	latex = RewritePrescripts(latex)
	latex = RewriteDerivatives(latex)
	return latex
}
