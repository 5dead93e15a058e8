package app

import (
	"context"
	"os"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

// MustSeedTasks loads the YAML fixtures at path into the task store.
func MustSeedTasks(path string) {
	f, err := os.Open(path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to open seed file")
		panic(err)
	}
	defer f.Close()

	patches, err := services.DecodeSeed(f)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to decode seed file")
		panic(err)
	}

	n, err := services.SeedTasks(context.Background(), globalTaskService, patches)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Int("created", n).
			Msg("failed to seed tasks")
		panic(err)
	}
	globalLogger.Info().
		Int("count", n).
		Str("path", path).
		Msg("seeded tasks")
}
