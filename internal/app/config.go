package app

import (
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

// globalLocation decides which calendar day "today" is for the date presets.
var globalLocation *time.Location

// MustReadConfig reads the YAML file at path, or only the environment when
// path is empty.
func MustReadConfig(path string) {
	cfg, err := config.NewReader(path).Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to read config")
		panic(err)
	}

	globalLocation, err = cfg.Location()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load timezone")
		panic(err)
	}

	globalLogger.Info().
		Str("env", cfg.Env).
		Str("storage", cfg.Storage).
		Str("timezone", globalLocation.String()).
		Msg("read config")

	config.SetGlobal(cfg)
}

func now() time.Time {
	return time.Now().In(globalLocation)
}
