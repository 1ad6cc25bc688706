package tex2mml

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-tex2mml/internal/pipeline"
)

// Compiler abstracts the external TeX-to-MathML compiler to allow different
// backends. Compile returns raw MathML markup for a normalized LaTeX
// fragment; the engine never retries it and never inspects its
// configuration.
type Compiler interface {
	Compile(ctx context.Context, latex string, display bool) (string, error)
	Close() error
}

// Compile-time interface implementation checks.
var (
	_ Compiler = (*mathJaxCompiler)(nil)
	_ Compiler = (*LaTeXMLCompiler)(nil)
)

// Normalize rewrites a raw LaTeX fragment into canonical form: sizing
// cleanup, prescript rewriting, derivative-accent rewriting. Total and pure;
// empty input yields empty output.
func Normalize(latex string) string {
	return pipeline.Normalize(latex)
}

// IsDisplay reports whether a LaTeX fragment should render in display
// (block) mode rather than inline.
func IsDisplay(latex string) bool {
	return pipeline.IsDisplay(latex)
}

// PostprocessMathML applies the ordered cleanup passes to raw compiler
// output. Exposed standalone for testing and reuse; total and pure.
func PostprocessMathML(raw string) string {
	return pipeline.PostprocessMathML(raw)
}

// Converter orchestrates the LaTeX-to-MathML conversion pipeline.
// Create with NewConverter, use Convert or ToMathML, and Close when done.
type Converter struct {
	cfg      converterConfig
	compiler Compiler
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithCompiler).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			logf:    func(string, ...any) {},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create compiler if not injected (e.g., by tests)
	if c.compiler == nil {
		c.compiler = newMathJaxCompiler(c.cfg.timeout)
	}

	return c
}

// Convert runs the full pipeline and returns the conversion result.
// The context is used for cancellation and timeout. An empty LaTeX input
// yields an empty Result without invoking the compiler. An empty
// Result.MathML with a nil error means the compiler produced no usable
// markup; callers must treat it as "conversion unavailable".
func (c *Converter) Convert(ctx context.Context, input Input) (Result, error) {
	var res Result
	if input.LaTeX == "" {
		return res, nil
	}

	res.Normalized = pipeline.Normalize(input.LaTeX)

	if input.Display != nil {
		res.Display = *input.Display
	} else {
		res.Display = pipeline.IsDisplay(input.LaTeX)
	}

	raw, err := c.compiler.Compile(ctx, res.Normalized, res.Display)
	if err != nil {
		return res, fmt.Errorf("compiling LaTeX: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return res, nil
	}

	res.MathML = pipeline.PostprocessMathML(raw)
	return res, nil
}

// ToMathML converts a LaTeX fragment to MathML, classifying display mode
// automatically. Total: compiler failures are logged as diagnostics and
// mapped to an empty string, never surfaced. This sits in a best-effort
// rendering path, so silent degradation beats a hard failure.
func (c *Converter) ToMathML(ctx context.Context, latex string) string {
	return c.toMathML(ctx, Input{LaTeX: latex})
}

// ToMathMLDisplay is ToMathML with an explicit display-mode override.
func (c *Converter) ToMathMLDisplay(ctx context.Context, latex string, display bool) string {
	return c.toMathML(ctx, Input{LaTeX: latex, Display: &display})
}

func (c *Converter) toMathML(ctx context.Context, input Input) string {
	res, err := c.Convert(ctx, input)
	if err != nil {
		c.cfg.logf("tex2mml: conversion failed: %v", err)
		return ""
	}
	return res.MathML
}

// Close releases compiler resources (the headless browser for the default
// backend).
func (c *Converter) Close() error {
	if c.compiler != nil {
		return c.compiler.Close()
	}
	return nil
}
