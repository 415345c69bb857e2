// Package env loads process-level defaults for the command line tools.
package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment carries the optional defaults read from the process
// environment. Flags take precedence over all of these.
type Environment struct {
	MaxStates int
	OutputDir string
}

// Load reads a .env file when present and then the PERFDAR_* variables.
// Everything is optional; malformed values are logged and ignored.
func Load(logger *zap.Logger) *Environment {
	_ = godotenv.Load()
	environment := &Environment{OutputDir: "."}
	if value, found := os.LookupEnv("PERFDAR_OUTPUT_DIR"); found {
		environment.OutputDir = value
	}
	if value, found := os.LookupEnv("PERFDAR_MAX_STATES"); found {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			logger.Warn("Failed to parse PERFDAR_MAX_STATES", zap.String("value", value), zap.Error(err))
		} else {
			environment.MaxStates = parsed
		}
	}
	return environment
}
