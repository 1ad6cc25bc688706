package tex2mml

import "time"

// Input contains conversion parameters.
type Input struct {
	LaTeX   string // LaTeX math fragment (empty yields an empty Result)
	Display *bool  // rendering mode override (nil = classify with IsDisplay)
}

// Result holds the outcome of a conversion.
type Result struct {
	MathML     string // postprocessed MathML markup ("" when unavailable)
	Normalized string // canonical LaTeX fed to the compiler
	Display    bool   // rendering mode the compiler was asked for
}

// Option configures a Converter.
type Option func(*Converter)

// Logf is the diagnostic logging signature accepted by WithLogger.
type Logf func(format string, args ...any)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	logf    Logf
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-compilation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tex2mml: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithCompiler replaces the default MathJax backend. Useful for the
// latexmlmath backend or for test fakes.
func WithCompiler(comp Compiler) Option {
	return func(c *Converter) {
		c.compiler = comp
	}
}

// WithLogger sets the diagnostic logger used when ToMathML swallows a
// compiler failure. The default logger discards everything.
func WithLogger(logf Logf) Option {
	return func(c *Converter) {
		c.cfg.logf = logf
	}
}
