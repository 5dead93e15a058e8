package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

var globalLogger zerolog.Logger

// logProfile is how an environment logs: the lowest level written and
// whether lines are rendered for a terminal instead of as JSON.
type logProfile struct {
	level   zerolog.Level
	console bool
}

var logProfiles = map[string]logProfile{
	config.EnvDev:   {level: zerolog.DebugLevel},
	config.EnvProd:  {level: zerolog.InfoLevel},
	config.EnvLocal: {level: zerolog.TraceLevel, console: true},
}

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	env := config.Global().Env

	profile, ok := logProfiles[env]
	if !ok {
		globalLogger.Error().
			Str("env", env).
			Msg("unknown env")
		panic(fmt.Errorf("unknown env: %s", env))
	}

	zerolog.SetGlobalLevel(profile.level)
	globalLogger = globalLogger.Output(profile.writer(os.Stdout))

	// gin.Logger() and gin.Recovery() write through the application logger.
	gin.DefaultWriter = componentLogger("gin")
	gin.DefaultErrorWriter = componentLogger("gin")

	globalLogger.Info().
		Str("env", env).
		Stringer("level", profile.level).
		Msg("initialized application logger")
}

func (p logProfile) writer(out io.Writer) io.Writer {
	if !p.console {
		return out
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.TimeFormat = time.DateTime
	consoleWriter.Out = out
	return consoleWriter
}

func componentLogger(component string) zerolog.Logger {
	return globalLogger.With().
		Str("component", component).
		Logger()
}
