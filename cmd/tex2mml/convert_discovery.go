package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tex2mml "github.com/alnah/go-tex2mml"
	"github.com/alnah/go-tex2mml/internal/config"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the positional arguments into the list of files to
// convert. Each argument is a .tex file or a directory walked recursively.
func discoverFiles(inputs []string, cfg *config.Config, normalizeOnly bool) ([]FileToConvert, error) {
	outExt := cfg.Output.Extension
	if outExt == "" {
		outExt = ".mml"
	}
	if normalizeOnly {
		outExt = ".normalized.tex"
	}

	var files []FileToConvert
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateTeXExtension(input); err != nil {
				return nil, err
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, cfg.Output.Dir, "", outExt),
			})
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !hasTeXExtension(path) {
				return nil
			}
			files = append(files, FileToConvert{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, cfg.Output.Dir, input, outExt),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// resolveOutputPath determines the output path for an input file.
// outputDir may be empty (alongside the input), a target filename, or a
// directory whose layout mirrors the input tree.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outExt string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outExt)
	}

	if strings.HasSuffix(outputDir, outExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+outExt)
		}
	}

	return filepath.Join(outputDir, base+outExt)
}

func hasTeXExtension(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".tex" || ext == ".latex"
}

// validateTeXExtension checks that the file has a .tex or .latex extension.
func validateTeXExtension(path string) error {
	if !hasTeXExtension(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > tex2mml.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, tex2mml.MaxPoolSize)
	}
	return nil
}
