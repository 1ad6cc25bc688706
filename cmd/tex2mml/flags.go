package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	config        string
	output        string
	compiler      string
	display       string
	timeout       string
	workers       int
	normalizeOnly bool
	quiet         bool
	verbose       bool
	version       bool
}

// parseFlags parses CLI flags and returns the positional input arguments.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("tex2mml", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.compiler, "compiler", "", "backend: mathjax, latexml")
	fs.StringVarP(&f.display, "display", "d", "", "rendering mode: auto, block, inline")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-expression compile timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.normalizeOnly, "normalize-only", "n", false, "emit normalized LaTeX, skip MathML compilation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
