// Package logging builds the structured logger shared by all components.
// Logs go to stderr; stdout is reserved for takeoff output.
package logging

import (
	"go.uber.org/zap"

	"github.com/ppiankov/planreader/internal/model"
)

// New builds a zap logger from the logging config. Unknown levels fall
// back to warn; any format other than "json" is console.
func New(cfg model.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// Verbose lowers the level to debug when the CLI's --verbose flag is set.
func Verbose(cfg model.LoggingConfig, verbose bool) model.LoggingConfig {
	if verbose {
		cfg.Level = "debug"
	}
	return cfg
}
