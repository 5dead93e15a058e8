package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type Handler interface {
	HandleMetricsMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleGetRollup(c *gin.Context)
}

type handlerImpl struct {
	logger  zerolog.Logger
	tasks   services.TaskService
	metrics *metrics.Metrics
	// now anchors the relative date presets. It is read once per request.
	now func() time.Time
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	m *metrics.Metrics,
	now func() time.Time,
) Handler {
	if now == nil {
		now = time.Now
	}
	return &handlerImpl{
		logger:  logger,
		tasks:   taskService,
		metrics: m,
		now:     now,
	}
}

// RegisterRoutes mounts the v1 API on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleMetricsMiddleware)

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.PATCH("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)

	router.GET("/rollup", h.HandleGetRollup)
}
