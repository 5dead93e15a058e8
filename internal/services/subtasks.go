package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/adanyl0v/go-task-tracker/internal/daterange"
	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// NormalizeSubtasks turns loosely shaped subtask objects into fully
// populated subtasks, keeping their order. An element that is not a JSON
// object is rejected with a ValidationError naming its position.
func NormalizeSubtasks(raw []json.RawMessage) ([]models.Subtask, error) {
	elems := make([]gjson.Result, len(raw))
	for i, r := range raw {
		elems[i] = gjson.ParseBytes(r)
	}
	return normalizeSubtaskResults(elems)
}

func normalizeSubtaskResults(elems []gjson.Result) ([]models.Subtask, error) {
	subtasks := make([]models.Subtask, 0, len(elems))
	for i, elem := range elems {
		if !elem.IsObject() {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("subtasks[%d]", i),
				Message: "must be an object",
			}
		}
		subtasks = append(subtasks, normalizeSubtask(elem))
	}
	return subtasks, nil
}

func normalizeSubtask(elem gjson.Result) models.Subtask {
	status := scalarText(elem.Get("status"))
	if status == "" {
		status = models.StatusPending
	}

	return models.Subtask{
		Title:      strings.TrimSpace(scalarText(elem.Get("title"))),
		Status:     status,
		Completion: coerceNumber(elem.Get("completion")),
		Remarks:    strings.TrimSpace(scalarText(elem.Get("remarks"))),
		StartDate:  daterange.TruncateDate(scalarText(elem.Get("startDate"))),
		DueDate:    daterange.TruncateDate(scalarText(elem.Get("dueDate"))),
		EndDate:    daterange.TruncateDate(scalarText(elem.Get("endDate"))),
		TimeSpent:  scalarText(elem.Get("timeSpent")),
	}
}

// scalarText renders strings, numbers and booleans as text. Anything else,
// including a missing value, is empty.
func scalarText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw
	default:
		return ""
	}
}

// coerceNumber reads v as a number the way a lenient form would: numeric
// strings parse, true is 1, and everything unusable is 0.
func coerceNumber(v gjson.Result) float64 {
	switch v.Type {
	case gjson.Number:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return 0
		}
		return v.Num
	case gjson.True:
		return 1
	case gjson.String:
		f, ok := parseNumber(v.Str)
		if !ok {
			return 0
		}
		return f
	default:
		return 0
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
