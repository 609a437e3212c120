package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/wwisedsl/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("wwisedsl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
wwisedsl - Compile an audio-authoring DSL to execution plans and back.

Usage:
  wwisedsl -mode MODE [options] INPUT...

Modes:
  compile   Translate DSL files (or "-" for stdin) into a plan of API calls.
  extract   Walk .wwu work-unit files or directories and emit DSL samples.
  validate  Check a JSONL sample corpus at syntax, semantic, and dependency level.

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", "", "Run mode. Options: 'compile', 'extract', or 'validate'.")
	outputFlag := flagSet.String("output", "", "Output path. Default is stdout.")
	oFlag := flagSet.String("o", "", "Output path (shorthand).")
	indexFlag := flagSet.String("index", "", "Path to a YAML object-index file seeding the name registry.")
	profileFlag := flagSet.String("profile", "", "Path to an HCL profile tuning extraction and validation.")
	appendFlag := flagSet.Bool("append", false, "Append to the output file instead of truncating.")
	validOutFlag := flagSet.String("valid-output", "", "Write samples that pass validation to this JSONL file.")
	invalidOutFlag := flagSet.String("invalid-output", "", "Write samples that fail validation to this JSONL file.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *modeFlag == "" && flagSet.NArg() == 0 {
		slog.Debug("No mode or inputs provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Mode:        strings.ToLower(*modeFlag),
		InputPaths:  flagSet.Args(),
		OutputPath:  outputPath,
		IndexPath:   *indexFlag,
		ProfilePath: *profileFlag,
		ValidPath:   *validOutFlag,
		InvalidPath: *invalidOutFlag,
		Append:      *appendFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
