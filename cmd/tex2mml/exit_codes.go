package main

import (
	"context"
	"errors"
	"os"

	tex2mml "github.com/alnah/go-tex2mml"
	"github.com/alnah/go-tex2mml/internal/config"
)

// Exit codes for the tex2mml CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitCompiler = 4 // Browser or compiler backend errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Backend errors (exit 4)
	if errors.Is(err, tex2mml.ErrBrowserConnect) ||
		errors.Is(err, tex2mml.ErrPageCreate) ||
		errors.Is(err, tex2mml.ErrPageLoad) ||
		errors.Is(err, tex2mml.ErrCompile) ||
		errors.Is(err, tex2mml.ErrCompilerClosed) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitCompiler
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadLaTeX) ||
		errors.Is(err, ErrWriteMathML) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
