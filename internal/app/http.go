package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/delivery/http/v1"
	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

// MustListenAndServeHTTP serves the API until SIGINT or SIGTERM, then
// drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.
func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := newRouter(cfg.Metrics.Path, globalTaskService, globalMetrics, now)
	server := newHTTPServer(cfg.HTTP, router)

	serveErr := make(chan error, 1)
	go func() {
		globalLogger.Info().
			Str("addr", server.Addr).
			Msg("setting up http server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
		return
	case <-ctx.Done():
	}

	globalLogger.Info().
		Dur("timeout", cfg.HTTP.ShutdownTimeout).
		Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func newHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// newRouter mounts the task API under /api/v1 and, when m is not nil, the
// Prometheus scrape endpoint at metricsPath.
func newRouter(
	metricsPath string,
	tasks services.TaskService,
	m *metrics.Metrics,
	clock func() time.Time,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if m != nil {
		router.GET(metricsPath, gin.WrapH(m.Handler()))
	}

	v1Handler := v1.New(componentLogger("http"), tasks, m, clock)
	v1.RegisterRoutes(router.Group("/api/v1"), v1Handler)

	return router
}
