package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/daterange"
	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type taskQuery struct {
	EmpID   string `form:"empId"`
	Project string `form:"project"`
	Preset  string `form:"preset"`
	Date    string `form:"date"`
}

// bindTaskQuery reads the match key and date filter shared by the list and
// rollup endpoints. Without a preset, a date selects that single day and
// no date selects everything. It aborts the request and returns false when
// the query is unusable.
func (h *handlerImpl) bindTaskQuery(c *gin.Context) (services.QueryTasksParams, bool) {
	var params services.QueryTasksParams

	var q taskQuery
	err := c.ShouldBindQuery(&q)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind query")
		abort(c, newBadRequestError(err.Error()))
		return params, false
	}

	empID := strings.TrimSpace(q.EmpID)
	project := strings.TrimSpace(q.Project)
	switch {
	case empID != "" && project != "":
		h.logger.Error().
			Str("emp_id", empID).
			Str("project", project).
			Msg("ambiguous match key")
		abort(c, newFieldError("project", errAmbiguousMatchKey.Error()))
		return params, false
	case empID != "":
		params.Match = &models.MatchKey{Field: models.MatchEmpID, Value: empID}
	case project != "":
		params.Match = &models.MatchKey{Field: models.MatchProject, Value: project}
	}

	preset := daterange.ParsePreset(q.Preset)
	if strings.TrimSpace(q.Preset) == "" && q.Date != "" {
		preset = daterange.PresetSpecificDate
	}
	params.Range = daterange.Resolve(preset, strings.TrimSpace(q.Date), h.now())

	return params, true
}
