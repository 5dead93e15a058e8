package models

import "strings"

type MatchField string

const (
	MatchEmpID   MatchField = "empId"
	MatchProject MatchField = "project"
)

// MatchKey selects tasks whose field equals Value, ignoring case.
type MatchKey struct {
	Field MatchField
	Value string
}

func (k MatchKey) Matches(t *Task) bool {
	switch k.Field {
	case MatchEmpID:
		return strings.EqualFold(t.EmpID, k.Value)
	case MatchProject:
		return strings.EqualFold(t.Project, k.Value)
	default:
		return false
	}
}
