package app

import (
	"errors"
	"fmt"
)

// Run modes of the single binary.
const (
	ModeCompile  = "compile"
	ModeExtract  = "extract"
	ModeValidate = "validate"
)

// Config holds everything an App instance needs to run.
type Config struct {
	Mode string

	// InputPaths are DSL files (compile), .wwu files or directories
	// (extract), or one JSONL corpus (validate). "-" means stdin for
	// compile.
	InputPaths []string

	OutputPath  string // plan JSON or sample JSONL; empty means stdout
	IndexPath   string // optional YAML registry index (compile)
	ProfilePath string // optional HCL profile (extract, validate)
	ValidPath   string // valid-sample split output (validate)
	InvalidPath string // invalid-sample split output (validate)
	Append      bool   // append to OutputPath instead of truncating

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeCompile, ModeExtract, ModeValidate:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be compile, extract, or validate", cfg.Mode)
	}
	if len(cfg.InputPaths) == 0 {
		return nil, errors.New("at least one input path is required")
	}
	if cfg.Mode == ModeValidate && len(cfg.InputPaths) > 1 {
		return nil, errors.New("validate takes a single JSONL input")
	}
	return &cfg, nil
}
