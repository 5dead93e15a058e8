package v1

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HandleMetricsMiddleware records every request under its route template,
// so /tasks/:id is one series regardless of the ID.
func (h *handlerImpl) HandleMetricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.metrics.ObserveHTTPRequest(
		c.Request.Method,
		c.FullPath(),
		c.Writer.Status(),
		time.Since(start),
	)
}
