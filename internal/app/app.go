package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/wwisedsl/internal/profile"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	profile *profile.Profile
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and extraction
// profile.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	prof := profile.Default()
	if cfg.ProfilePath != "" {
		loaded, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			// A failure to load the profile is a fatal startup error.
			panic(fmt.Errorf("failed to load profile: %w", err))
		}
		prof = loaded
		logger.Debug("Extraction profile loaded.", "path", cfg.ProfilePath)
	}

	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		profile: prof,
	}
}

// Profile returns the application's extraction profile. This is primarily for
// testing.
func (a *App) Profile() *profile.Profile {
	return a.profile
}
