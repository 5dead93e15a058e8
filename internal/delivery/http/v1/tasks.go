package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to read request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	patch, err := services.ParseTaskPatch(body)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse task")
		abort(c, newServiceError(err))
		return
	}

	task, err := h.tasks.CreateTask(c, patch)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	task, err := h.tasks.GetTaskByID(c, c.Param("id"))
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	params, ok := h.bindTaskQuery(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.QueryTasks(c, params)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	if len(tasks) == 0 {
		h.logger.Warn().
			Stringer("range", params.Range).
			Msg("no tasks found")
	}
	h.logger.Info().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to read request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	patch, err := services.ParseTaskPatch(body)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to parse task")
		abort(c, newServiceError(err))
		return
	}

	task, err := h.tasks.UpdateTask(c, taskID, patch)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	err := h.tasks.DeleteTask(c, c.Param("id"))
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
