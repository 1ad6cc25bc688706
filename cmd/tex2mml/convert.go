package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	tex2mml "github.com/alnah/go-tex2mml"
	"github.com/alnah/go-tex2mml/internal/config"
	"github.com/alnah/go-tex2mml/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadLaTeX          = errors.New("failed to read LaTeX file")
	ErrWriteMathML        = errors.New("failed to write MathML file")
	ErrInvalidExtension   = errors.New("file must have .tex or .latex extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// Converter is the subset of the conversion API the CLI needs.
type Converter interface {
	Convert(ctx context.Context, input tex2mml.Input) (tex2mml.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*tex2mml.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (*tex2mml.Converter, error)
	Release(*tex2mml.Converter)
	Size() int
}

// Compile-time interface implementation check.
var _ Pool = (*tex2mml.ConverterPool)(nil)

// loadEffectiveConfig loads the config file (if any) and merges CLI flags
// over it. CLI values win.
func loadEffectiveConfig(flags *convertFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrConfigParse, err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.compiler != "" {
		cfg.Compiler = flags.compiler
	}
	if flags.display != "" {
		cfg.Display = flags.display
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers != 0 {
		if err := validateWorkers(flags.workers); err != nil {
			return err
		}
		cfg.Workers = flags.workers
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (e.g., 30s, 2m)", ErrInvalidTimeout, flags.timeout)
		}
		cfg.Timeout = d
	}
	cfg.Verbose = cfg.Verbose || flags.verbose
	return nil
}

// converterOptions translates effective config into converter options.
func converterOptions(cfg *config.Config, flags *convertFlags) []tex2mml.Option {
	var opts []tex2mml.Option
	if cfg.Timeout > 0 {
		opts = append(opts, tex2mml.WithTimeout(cfg.Timeout))
	}
	if cfg.Compiler == config.CompilerLaTeXML {
		// Stateless backend, safe to share across pool converters.
		opts = append(opts, tex2mml.WithCompiler(tex2mml.NewLaTeXMLCompiler()))
	}
	if cfg.Verbose || flags.verbose {
		opts = append(opts, tex2mml.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}
	return opts
}

// displayOverride maps the display mode to the Input.Display override.
// Returns nil for "auto" so each expression is classified by content.
func displayOverride(mode string) *bool {
	switch mode {
	case config.DisplayBlock:
		b := true
		return &b
	case config.DisplayInline:
		b := false
		return &b
	default:
		return nil
	}
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, cfg *config.Config, pool Pool) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: pass .tex files, a directory, or \"-\" for stdin", ErrNoInput)
	}

	if len(inputs) == 1 && inputs[0] == "-" {
		return convertStdin(ctx, os.Stdin, os.Stdout, cfg, pool, flags.normalizeOnly)
	}

	files, err := discoverFiles(inputs, cfg, flags.normalizeOnly)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .tex files found in %v", inputs)
	}

	results := convertBatch(ctx, pool, files, cfg, flags.normalizeOnly)

	failed := printResults(results, flags.quiet, flags.verbose, os.Stdout, os.Stderr)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// convertStdin reads one expression from stdin and writes the result to stdout.
func convertStdin(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, pool Pool, normalizeOnly bool) error {
	content, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadLaTeX, err)
	}

	if normalizeOnly {
		fmt.Fprintln(out, tex2mml.Normalize(string(content)))
		return nil
	}

	conv, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	result, err := conv.Convert(ctx, tex2mml.Input{
		LaTeX:   string(content),
		Display: displayOverride(cfg.Display),
	})
	if err != nil {
		return decorateCompileError(err)
	}

	fmt.Fprintln(out, result.MathML)
	return nil
}

// decorateCompileError appends actionable hints to backend failures.
func decorateCompileError(err error) error {
	switch {
	case errors.Is(err, tex2mml.ErrBrowserConnect),
		errors.Is(err, tex2mml.ErrPageCreate),
		errors.Is(err, tex2mml.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w%s", err, hints.ForCompilerNotFound())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
