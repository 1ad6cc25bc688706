// Package tex2mml converts LaTeX math fragments to MathML markup.
//
// # Quick Start
//
// Create a converter, convert a fragment, and close when done:
//
//	conv := tex2mml.NewConverter()
//	defer conv.Close()
//
//	mml := conv.ToMathML(ctx, `{}_{3}^{0}R \cdot \dot{\theta}`)
//	if mml == "" {
//	    // conversion unavailable, fall back to raw LaTeX
//	}
//
// ToMathML never fails: compiler errors are logged through the configured
// logger and mapped to an empty result. Callers that need the error use
// Convert instead, which also exposes the intermediate normalized LaTeX.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. LaTeX normalization (sizing-command cleanup, prescript rewriting,
//     derivative-accent rewriting)
//  2. Display-mode classification from structural cues
//  3. Compilation to MathML via an external compiler (MathJax in headless
//     Chrome by default, or the latexmlmath CLI)
//  4. MathML postprocessing (namespace enforcement, accent marking,
//     placeholder and empty-node cleanup, layout-hint stripping)
//
// Stages 1, 2, and 4 are pure string transforms exposed standalone as
// Normalize, IsDisplay, and PostprocessMathML; they are safe for concurrent
// use without a Converter.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := tex2mml.NewConverter(
//	    tex2mml.WithTimeout(time.Minute),
//	    tex2mml.WithCompiler(tex2mml.NewLaTeXMLCompiler()),
//	)
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple compiler
// instances:
//
//	pool := tex2mml.NewConverterPool(tex2mml.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
package tex2mml
