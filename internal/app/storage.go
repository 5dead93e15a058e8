package app

import (
	"fmt"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

var (
	globalTaskRepository repository.TaskRepository
	globalTaskService    services.TaskService
	globalMetrics        *metrics.Metrics
)

// MustInitTaskRepository opens the backend named by the STORAGE setting.
// The postgres backend connects and, if enabled, migrates first.
func MustInitTaskRepository() {
	cfg := config.Global()

	switch cfg.Storage {
	case config.StoragePostgres:
		MustConnectPostgres()
		if cfg.Postgres.AutoMigrate {
			MustMigratePostgres()
		}
		globalTaskRepository = repository.NewPostgresRepository(globalPostgresPool)
	case config.StorageMemory:
		globalLogger.Warn().Msg("tasks are kept in memory and lost on exit")
		globalTaskRepository = repository.NewMemoryRepository()
	default:
		err := fmt.Errorf("unknown storage: %s", cfg.Storage)
		globalLogger.Error().
			Err(err).
			Msg("failed to init task repository")
		panic(err)
	}

	globalLogger.Info().
		Str("storage", cfg.Storage).
		Msg("initialized task repository")
}

func CloseTaskRepository() {
	DisconnectPostgres()
}

func InitMetrics() {
	cfg := config.Global().Metrics
	if cfg.Disabled {
		globalLogger.Info().Msg("metrics disabled")
		return
	}

	globalMetrics = metrics.New(cfg.Namespace, true)
	globalLogger.Info().
		Str("namespace", cfg.Namespace).
		Str("path", cfg.Path).
		Msg("initialized metrics")
}

func InitTaskService() {
	globalTaskService = services.NewTaskService(
		componentLogger("tasks"),
		globalTaskRepository,
		globalMetrics,
	)
}
