package tex2mml

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-tex2mml/internal/fileutil"
)

// compilerHTML is the harness page loaded into headless Chrome. It loads
// MathJax and exposes window.tex2mml(tex, display).
//
//go:embed compiler.html
var compilerHTML string

// readyTimeout bounds the wait for MathJax startup inside the harness page.
const readyTimeout = 30 * time.Second

// mathJaxCompiler compiles LaTeX to MathML with MathJax running in headless
// Chrome via go-rod. Rod automatically downloads Chromium on first run if
// not found. The browser and harness page are launched lazily on first
// Compile and reused across calls.
type mathJaxCompiler struct {
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
	closed  bool

	harnessPath    string
	harnessCleanup func()
}

// newMathJaxCompiler creates a mathJaxCompiler with the given per-call
// timeout.
func newMathJaxCompiler(timeout time.Duration) *mathJaxCompiler {
	return &mathJaxCompiler{timeout: timeout}
}

// NewMathJaxCompiler creates the default headless-Chrome MathJax backend.
func NewMathJaxCompiler() Compiler {
	return newMathJaxCompiler(defaultTimeout)
}

// ensurePage lazily launches the browser and loads the harness page.
func (c *mathJaxCompiler) ensurePage() error {
	if c.page != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	path, cleanup, err := fileutil.WriteTempFile(compilerHTML, "html")
	if err != nil {
		return err
	}
	c.harnessPath = path
	c.harnessCleanup = cleanup

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	if err := page.Timeout(readyTimeout).WaitLoad(); err != nil {
		_ = page.Close()
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// MathJax loads asynchronously; wait until the conversion entry point
	// is installed.
	if err := page.Timeout(readyTimeout).Wait(rod.Eval(`() => window.tex2mmlReady === true`)); err != nil {
		_ = page.Close()
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	c.page = page
	return nil
}

// Compile converts normalized LaTeX to raw MathML markup. A MathJax parse
// failure surfaces as an evaluation error wrapped in ErrCompile.
func (c *mathJaxCompiler) Compile(ctx context.Context, latex string, display bool) (string, error) {
	if c.closed {
		return "", ErrCompilerClosed
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := c.ensurePage(); err != nil {
		return "", err
	}

	// Honor a context deadline shorter than the configured timeout.
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	obj, err := c.page.Timeout(timeout).Eval(`(tex, display) => window.tex2mml(tex, display)`, latex, display)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompile, err)
	}

	return obj.Value.Str(), nil
}

// Close releases browser resources and removes the harness file.
func (c *mathJaxCompiler) Close() error {
	c.closed = true

	if c.harnessCleanup != nil {
		c.harnessCleanup()
		c.harnessCleanup = nil
	}

	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		c.page = nil
		return err
	}
	return nil
}
