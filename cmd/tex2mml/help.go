package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tex2mml [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert LaTeX math to MathML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .tex file, directory of .tex files, or \"-\" for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --compiler <s>        Backend: mathjax (default), latexml")
	fmt.Fprintln(w, "  -d, --display <s>         Rendering mode: auto (default), block, inline")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Compile timeout per expression (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -n, --normalize-only      Emit normalized LaTeX, skip MathML compilation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  echo '\\dot{x} = v' | tex2mml -")
	fmt.Fprintln(w, "  tex2mml equations.tex")
	fmt.Fprintln(w, "  tex2mml --compiler latexml -o out/ chapters/")
}
