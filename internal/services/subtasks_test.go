package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

func rawMessages(docs ...string) []json.RawMessage {
	raw := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		raw[i] = json.RawMessage(d)
	}
	return raw
}

func TestNormalizeSubtasks_FillsDefaults(t *testing.T) {
	subtasks, err := NormalizeSubtasks(rawMessages(`{"title": "  Foo  "}`))
	require.NoError(t, err)

	assert.Equal(t, []models.Subtask{{
		Title:      "Foo",
		Status:     "Pending",
		Completion: 0,
		Remarks:    "",
		StartDate:  "",
		DueDate:    "",
		EndDate:    "",
		TimeSpent:  "",
	}}, subtasks)

	encoded, err := json.Marshal(subtasks[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "Foo", "status": "Pending", "completion": 0, "remarks": "",
		"startDate": "", "dueDate": "", "endDate": "", "timeSpent": ""
	}`, string(encoded))
}

func TestNormalizeSubtasks_KeepsValuesAndOrder(t *testing.T) {
	subtasks, err := NormalizeSubtasks(rawMessages(
		`{"title": "B", "status": "Completed", "completion": 100, "remarks": " done ",
		  "startDate": "2024-01-01T09:00:00Z", "dueDate": "2024-01-03", "endDate": "2024-01-02",
		  "timeSpent": "3h"}`,
		`{"title": "A", "status": "Blocked"}`,
		`{}`,
	))
	require.NoError(t, err)
	require.Len(t, subtasks, 3)

	assert.Equal(t, models.Subtask{
		Title:      "B",
		Status:     "Completed",
		Completion: 100,
		Remarks:    "done",
		StartDate:  "2024-01-01",
		DueDate:    "2024-01-03",
		EndDate:    "2024-01-02",
		TimeSpent:  "3h",
	}, subtasks[0])
	assert.Equal(t, "A", subtasks[1].Title)
	assert.Equal(t, "Blocked", subtasks[1].Status, "unknown statuses are stored verbatim")
	assert.Equal(t, "", subtasks[2].Title)
	assert.Equal(t, "Pending", subtasks[2].Status)
}

func TestNormalizeSubtasks_CoercesCompletion(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want float64
	}{
		{"number", `{"completion": 42.5}`, 42.5},
		{"numeric string", `{"completion": " 30 "}`, 30},
		{"non numeric string", `{"completion": "half"}`, 0},
		{"empty string", `{"completion": ""}`, 0},
		{"null", `{"completion": null}`, 0},
		{"missing", `{}`, 0},
		{"true", `{"completion": true}`, 1},
		{"false", `{"completion": false}`, 0},
		{"object", `{"completion": {"v": 5}}`, 0},
		{"out of range is kept", `{"completion": 150}`, 150},
		{"overflowing number", `{"completion": 1e400}`, 0},
		{"overflowing numeric string", `{"completion": "1e400"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtasks, err := NormalizeSubtasks(rawMessages(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, subtasks[0].Completion)
		})
	}
}

func TestNormalizeSubtasks_RejectsNonObjects(t *testing.T) {
	_, err := NormalizeSubtasks(rawMessages(`{"title": "ok"}`, `"just a string"`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "subtasks[1]", validationErr.Field)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeSubtasks_Empty(t *testing.T) {
	subtasks, err := NormalizeSubtasks(nil)
	require.NoError(t, err)
	assert.NotNil(t, subtasks)
	assert.Empty(t, subtasks)
}
