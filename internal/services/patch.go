package services

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/adanyl0v/go-task-tracker/internal/daterange"
	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type stringField struct {
	key  string
	dst  func(p *models.TaskPatch, v *string)
	date bool
}

var patchStringFields = []stringField{
	{key: "empId", dst: func(p *models.TaskPatch, v *string) { p.EmpID = v }},
	{key: "project", dst: func(p *models.TaskPatch, v *string) { p.Project = v }},
	{key: "date", dst: func(p *models.TaskPatch, v *string) { p.Date = v }, date: true},
	{key: "startDate", dst: func(p *models.TaskPatch, v *string) { p.StartDate = v }, date: true},
	{key: "dueDate", dst: func(p *models.TaskPatch, v *string) { p.DueDate = v }, date: true},
	{key: "endDate", dst: func(p *models.TaskPatch, v *string) { p.EndDate = v }, date: true},
	{key: "status", dst: func(p *models.TaskPatch, v *string) { p.Status = v }},
	{key: "remarks", dst: func(p *models.TaskPatch, v *string) { p.Remarks = v }},
	{key: "timeSpent", dst: func(p *models.TaskPatch, v *string) { p.TimeSpent = v }},
}

// ParseTaskPatch decodes a JSON task document into a patch holding only
// the keys present in body. A null value clears the field, except for
// subtasks where null means "leave unchanged". Subtasks are normalized.
// Unknown keys, including id and the timestamps, are ignored.
func ParseTaskPatch(body []byte) (models.TaskPatch, error) {
	var patch models.TaskPatch

	if !gjson.ValidBytes(body) {
		return patch, &ValidationError{Field: "body", Message: "malformed JSON"}
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return patch, &ValidationError{Field: "body", Message: "must be a JSON object"}
	}

	for _, f := range patchStringFields {
		v := doc.Get(f.key)
		if !v.Exists() {
			continue
		}
		if v.IsObject() || v.IsArray() {
			return models.TaskPatch{}, &ValidationError{Field: f.key, Message: "must be a string"}
		}

		s := scalarText(v)
		switch {
		case f.key == "empId":
			s = strings.TrimSpace(s)
		case f.date:
			s = daterange.TruncateDate(s)
		}
		f.dst(&patch, &s)
	}

	if v := doc.Get("completion"); v.Exists() {
		switch v.Type {
		case gjson.Null:
			patch.ClearCompletion = true
		case gjson.Number:
			if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
				return models.TaskPatch{}, &ValidationError{Field: "completion", Message: "out of range"}
			}
			completion := v.Num
			patch.Completion = &completion
		case gjson.String:
			s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v.Str), "%"))
			if s == "" {
				patch.ClearCompletion = true
				break
			}
			completion, ok := parseNumber(s)
			if !ok {
				return models.TaskPatch{}, &ValidationError{Field: "completion", Message: "must be a number"}
			}
			patch.Completion = &completion
		default:
			return models.TaskPatch{}, &ValidationError{Field: "completion", Message: "must be a number"}
		}
	}

	if v := doc.Get("subtasks"); v.Exists() && v.Type != gjson.Null {
		if !v.IsArray() {
			return models.TaskPatch{}, &ValidationError{Field: "subtasks", Message: "must be an array"}
		}
		subtasks, err := normalizeSubtaskResults(v.Array())
		if err != nil {
			return models.TaskPatch{}, err
		}
		patch.Subtasks = &subtasks
	}

	return patch, nil
}
