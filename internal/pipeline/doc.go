// Package pipeline implements the LaTeX normalization and MathML
// postprocessing engine.
//
// This package handles the deterministic text-transformation stages:
//   - Environment cleanup (\limits removal, \bm rewriting, \text whitespace)
//   - Left-script (prescript) rewriting of empty-base notation like {}_{3}^{0}R
//   - Derivative rewriting of \dot and \ddot into accent overlays
//   - Display-mode classification from structural cues
//   - MathML cleanup of the output of an external TeX-to-MathML compiler
//
// Compilation to MathML is handled separately by the root tex2mml package,
// which drives the external compiler backends. This separation keeps the
// pipeline pure: every function here is a synchronous string transform with
// no I/O, no shared state, and no failure mode other than leaving malformed
// input untouched.
package pipeline
