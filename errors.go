package tex2mml

import "errors"

// Sentinel errors for library operations.
var (
	ErrCompile        = errors.New("MathML compilation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load compiler page")
	ErrCompilerClosed = errors.New("compiler already closed")
)
