package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/wwisedsl/internal/compiler"
	"github.com/vk/wwisedsl/internal/ctxlog"
	"github.com/vk/wwisedsl/internal/extractor"
	"github.com/vk/wwisedsl/internal/fsutil"
	"github.com/vk/wwisedsl/internal/plan"
	"github.com/vk/wwisedsl/internal/registry"
	"github.com/vk/wwisedsl/internal/sample"
	"github.com/vk/wwisedsl/internal/validator"
)

// Run executes the application logic selected by the configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.cfg.Mode)

	var err error
	switch a.cfg.Mode {
	case ModeCompile:
		err = a.runCompile(ctx)
	case ModeExtract:
		err = a.runExtract(ctx)
	case ModeValidate:
		err = a.runValidate(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return err
}

// loadRegistry builds the optional name registry from the index file.
func (a *App) loadRegistry() (*registry.Registry, error) {
	if a.cfg.IndexPath == "" {
		return nil, nil
	}
	reg, err := registry.LoadIndex(a.cfg.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry index: %w", err)
	}
	a.logger.Debug("Registry index loaded.", "path", a.cfg.IndexPath)
	return reg, nil
}

// openOutput opens the configured output path, or falls back to the app's
// writer. The returned closer is a no-op for the fallback.
func (a *App) openOutput() (io.Writer, func() error, error) {
	if a.cfg.OutputPath == "" {
		return a.outW, func() error { return nil }, nil
	}
	flags := os.O_CREATE | os.O_WRONLY
	if a.cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(a.cfg.OutputPath, flags, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output %s: %w", a.cfg.OutputPath, err)
	}
	return f, f.Close, nil
}

func (a *App) runCompile(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var lines []string
	for _, path := range a.cfg.InputPaths {
		text, err := readInput(path)
		if err != nil {
			return err
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}
	logger.Debug("DSL input read.", "lines", len(lines))

	reg, err := a.loadRegistry()
	if err != nil {
		return err
	}

	var opts []compiler.Option
	if reg != nil {
		opts = append(opts, compiler.WithRegistry(reg))
	}
	result := compiler.New(opts...).Compile(lines)

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	for _, compileErr := range result.Errors {
		logger.Error(compileErr)
	}
	if err := plan.Validate(result.Plan); err != nil {
		logger.Warn("Plan validation failed.", "error", err)
	}

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	if err := plan.Encode(out, result.Plan); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	logger.Info("Compilation finished.",
		"steps", len(result.Plan),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)
	if len(result.Errors) > 0 {
		return fmt.Errorf("compilation produced %d error(s)", len(result.Errors))
	}
	return nil
}

func (a *App) runExtract(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, input := range a.cfg.InputPaths {
		found, err := fsutil.FindFilesByExtension(input, ".wwu")
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", input, err)
		}
		files = append(files, found...)
	}
	files = fsutil.Dedupe(files)
	if len(files) == 0 {
		logger.Warn("No work-unit files found, nothing to extract.")
		return nil
	}
	logger.Debug("Work-unit files discovered.", "count", len(files))

	roots, err := a.profile.RootKinds()
	if err != nil {
		return err
	}
	ext := extractor.New(extractor.Options{
		IncludeSounds:   a.profile.IncludeSounds,
		Roots:           roots,
		ExtraProperties: a.profile.ExtraProperties,
	})

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()
	writer := sample.NewWriter(out)

	total := 0
	failed := 0
	complexity := map[string]int{}
	for _, file := range files {
		records, err := ext.ExtractFile(file)
		if err != nil {
			logger.Error("Failed to extract work unit.", "file", file, "error", err)
			failed++
			continue
		}
		for _, rec := range records {
			if err := writer.Write(rec); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
			complexity[rec.Meta.Complexity]++
			total++
		}
		logger.Debug("Work unit extracted.", "file", file, "samples", len(records))
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush samples: %w", err)
	}

	stats := ext.Stats()
	logger.Info("Extraction finished.",
		"files", len(files),
		"failed_files", failed,
		"samples", total,
		"simple", complexity["simple"],
		"medium", complexity["medium"],
		"complex", complexity["complex"],
		"expert", complexity["expert"],
		"creates", stats.Creates,
		"set_properties", stats.SetProps,
		"links", stats.Links,
		"assigns", stats.Assigns,
		"actions", stats.Actions,
	)
	if failed == len(files) {
		return fmt.Errorf("all %d work-unit files failed to extract", failed)
	}
	return nil
}

func (a *App) runValidate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	records, badLines, err := sample.ReadFile(a.cfg.InputPaths[0])
	if err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}
	for _, bad := range badLines {
		logger.Warn("Skipping malformed sample.", "detail", bad)
	}

	reg, err := a.loadRegistry()
	if err != nil {
		return err
	}
	var compilerOpts []compiler.Option
	if reg != nil {
		compilerOpts = append(compilerOpts, compiler.WithRegistry(reg))
	}
	v := validator.New(
		validator.WithCompiler(compiler.New(compilerOpts...)),
		validator.WithPreseededNames(a.profile.PreseededObjects),
	)

	verdicts, report := v.ValidateBatch(records)

	var validOut, invalidOut *sample.Writer
	if a.cfg.ValidPath != "" {
		w, f, err := sample.OpenFile(a.cfg.ValidPath, a.cfg.Append)
		if err != nil {
			return fmt.Errorf("failed to open valid-sample output: %w", err)
		}
		defer f.Close()
		validOut = w
	}
	if a.cfg.InvalidPath != "" {
		w, f, err := sample.OpenFile(a.cfg.InvalidPath, a.cfg.Append)
		if err != nil {
			return fmt.Errorf("failed to open invalid-sample output: %w", err)
		}
		defer f.Close()
		invalidOut = w
	}

	for i, verdict := range verdicts {
		if verdict.Valid {
			if validOut != nil {
				if err := validOut.Write(records[i]); err != nil {
					return fmt.Errorf("failed to write valid sample: %w", err)
				}
			}
			continue
		}
		logger.Debug("Invalid sample.",
			"index", i,
			"root", records[i].Meta.RootName,
			"errors", verdict.Errors,
		)
		if invalidOut != nil {
			if err := invalidOut.Write(records[i]); err != nil {
				return fmt.Errorf("failed to write invalid sample: %w", err)
			}
		}
	}
	if validOut != nil {
		if err := validOut.Flush(); err != nil {
			return err
		}
	}
	if invalidOut != nil {
		if err := invalidOut.Flush(); err != nil {
			return err
		}
	}

	logger.Info("Validation finished.",
		"total", report.Total,
		"valid", report.Valid,
		"invalid", report.Invalid,
		"syntax_errors", report.SyntaxErrors,
		"semantic_errors", report.SemanticErrors,
		"dependency_warnings", report.DependencyWarnings,
	)
	return nil
}

// readInput reads a DSL source file, with "-" meaning stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
