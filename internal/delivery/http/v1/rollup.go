package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

func (h *handlerImpl) HandleGetRollup(c *gin.Context) {
	params, ok := h.bindTaskQuery(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.QueryTasks(c, params)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	rollup := services.ComputeRollup(tasks)
	h.logger.Info().
		Int("tasks", rollup.TotalTasks).
		Stringer("range", params.Range).
		Msg("computed rollup")
	c.JSON(http.StatusOK, rollup)
}
