package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ernestofreyreg/law-api/internal/config"
)

// NewLogger creates a structured zerolog.Logger configured from the
// process config.
func NewLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "law-api").
		Str("env", cfg.Env).
		Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
