package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		check    func(t *testing.T, f *convertFlags, positional []string)
	}{
		{
			name: "no flags",
			args: []string{"tex2mml", "input.tex"},
			check: func(t *testing.T, f *convertFlags, positional []string) {
				if len(positional) != 1 || positional[0] != "input.tex" {
					t.Errorf("positional = %v, want [input.tex]", positional)
				}
				if f.compiler != "" || f.display != "" {
					t.Errorf("expected empty compiler/display, got %q/%q", f.compiler, f.display)
				}
			},
		},
		{
			name: "all flags",
			args: []string{
				"tex2mml",
				"--config", "batch",
				"--output", "out/",
				"--compiler", "latexml",
				"--display", "block",
				"--timeout", "2m",
				"--workers", "4",
				"--normalize-only",
				"--verbose",
				"a.tex", "b.tex",
			},
			check: func(t *testing.T, f *convertFlags, positional []string) {
				if f.config != "batch" {
					t.Errorf("config = %q, want %q", f.config, "batch")
				}
				if f.output != "out/" {
					t.Errorf("output = %q, want %q", f.output, "out/")
				}
				if f.compiler != "latexml" {
					t.Errorf("compiler = %q, want %q", f.compiler, "latexml")
				}
				if f.display != "block" {
					t.Errorf("display = %q, want %q", f.display, "block")
				}
				if f.timeout != "2m" {
					t.Errorf("timeout = %q, want %q", f.timeout, "2m")
				}
				if f.workers != 4 {
					t.Errorf("workers = %d, want 4", f.workers)
				}
				if !f.normalizeOnly {
					t.Error("normalizeOnly = false, want true")
				}
				if !f.verbose {
					t.Error("verbose = false, want true")
				}
				if len(positional) != 2 {
					t.Errorf("positional = %v, want 2 args", positional)
				}
			},
		},
		{
			name: "shorthand flags",
			args: []string{"tex2mml", "-c", "batch", "-o", "out/", "-w", "2", "-n", "-q", "-"},
			check: func(t *testing.T, f *convertFlags, positional []string) {
				if f.config != "batch" || f.output != "out/" || f.workers != 2 {
					t.Errorf("unexpected flags: %+v", f)
				}
				if !f.normalizeOnly || !f.quiet {
					t.Errorf("bool shorthands not set: %+v", f)
				}
				if len(positional) != 1 || positional[0] != "-" {
					t.Errorf("positional = %v, want [-]", positional)
				}
			},
		},
		{
			name: "version flag",
			args: []string{"tex2mml", "--version"},
			check: func(t *testing.T, f *convertFlags, positional []string) {
				if !f.version {
					t.Error("version = false, want true")
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"tex2mml", "--nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, f, positional)
			}
		})
	}
}
