package tex2mml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// LaTeXMLCompiler compiles LaTeX to MathML by invoking the latexmlmath CLI
// (part of the LaTeXML distribution). Alternative to the default MathJax
// backend for environments without a browser.
type LaTeXMLCompiler struct {
	Runner CommandRunner
}

// NewLaTeXMLCompiler creates a LaTeXMLCompiler with a real command runner.
func NewLaTeXMLCompiler() *LaTeXMLCompiler {
	return &LaTeXMLCompiler{Runner: &ExecRunner{}}
}

// Compile converts normalized LaTeX to presentation MathML on stdout.
// Display mode is requested by wrapping the fragment in \displaystyle,
// since latexmlmath has no dedicated flag for it.
func (c *LaTeXMLCompiler) Compile(ctx context.Context, latex string, display bool) (string, error) {
	if latex == "" {
		return "", nil
	}

	if display {
		latex = `\displaystyle{` + latex + `}`
	}

	stdout, stderr, err := c.Runner.Run(ctx, "latexmlmath", "--pmml=-", "--", latex)
	if err != nil {
		// Both errors stay in the chain: callers match ErrCompile for the
		// exit code and the runner error for diagnostics such as a missing
		// latexmlmath binary.
		return "", fmt.Errorf("%w: %s: %w", ErrCompile, stderr, err)
	}

	return stdout, nil
}

// Close is a no-op; latexmlmath holds no resources between invocations.
func (c *LaTeXMLCompiler) Close() error {
	return nil
}
