package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

func TestParseTaskPatch_OnlyPresentFields(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{
		"empId": " E1 ",
		"project": "Alpha",
		"date": "2024-01-10T08:00:00.000Z",
		"completion": 40,
		"status": "In Progress"
	}`))
	require.NoError(t, err)

	require.NotNil(t, patch.EmpID)
	assert.Equal(t, "E1", *patch.EmpID)
	assert.Equal(t, "Alpha", *patch.Project)
	assert.Equal(t, "2024-01-10", *patch.Date)
	assert.Equal(t, 40.0, *patch.Completion)
	assert.Equal(t, "In Progress", *patch.Status)

	assert.Nil(t, patch.StartDate)
	assert.Nil(t, patch.Remarks)
	assert.Nil(t, patch.TimeSpent)
	assert.Nil(t, patch.Subtasks)
	assert.False(t, patch.ClearCompletion)
}

func TestParseTaskPatch_Subtasks(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"subtasks": [{"title": "Design"}]}`))
	require.NoError(t, err)

	require.NotNil(t, patch.Subtasks)
	assert.Equal(t, []models.Subtask{{Title: "Design", Status: models.StatusPending}}, *patch.Subtasks)
	assert.Nil(t, patch.EmpID)
}

func TestParseTaskPatch_EmptySubtasksClearsList(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"subtasks": []}`))
	require.NoError(t, err)

	require.NotNil(t, patch.Subtasks)
	assert.Empty(t, *patch.Subtasks)
}

func TestParseTaskPatch_NullSubtasksLeavesListAlone(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"subtasks": null}`))
	require.NoError(t, err)
	assert.Nil(t, patch.Subtasks)
	assert.True(t, patch.Empty())
}

func TestParseTaskPatch_NullClearsFields(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"remarks": null, "completion": null}`))
	require.NoError(t, err)

	require.NotNil(t, patch.Remarks)
	assert.Equal(t, "", *patch.Remarks)
	assert.True(t, patch.ClearCompletion)
	assert.Nil(t, patch.Completion)
}

func TestParseTaskPatch_Completion(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"completion": "75%"}`))
	require.NoError(t, err)
	assert.Equal(t, 75.0, *patch.Completion)

	patch, err = ParseTaskPatch([]byte(`{"completion": " 12.5 "}`))
	require.NoError(t, err)
	assert.Equal(t, 12.5, *patch.Completion)

	patch, err = ParseTaskPatch([]byte(`{"completion": ""}`))
	require.NoError(t, err)
	assert.True(t, patch.ClearCompletion)
}

func TestParseTaskPatch_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed json", `{"empId":`, "body"},
		{"not an object", `[1, 2]`, "body"},
		{"object for string field", `{"project": {"name": "Alpha"}}`, "project"},
		{"array for string field", `{"status": ["Pending"]}`, "status"},
		{"non numeric completion", `{"completion": "most"}`, "completion"},
		{"boolean completion", `{"completion": true}`, "completion"},
		{"overflowing completion", `{"completion": 1e400}`, "completion"},
		{"overflowing negative completion", `{"completion": -1e400}`, "completion"},
		{"subtasks not array", `{"subtasks": {"title": "x"}}`, "subtasks"},
		{"subtask not object", `{"subtasks": [{"title": "x"}, 5]}`, "subtasks[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskPatch([]byte(tt.body))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseTaskPatch_IgnoresServerFields(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"id": "abc", "createdAt": "2020-01-01", "plan": "x"}`))
	require.NoError(t, err)
	assert.True(t, patch.Empty())
}

func TestParseTaskPatch_NumbersAsText(t *testing.T) {
	patch, err := ParseTaskPatch([]byte(`{"empId": 1024, "timeSpent": 3}`))
	require.NoError(t, err)
	assert.Equal(t, "1024", *patch.EmpID)
	assert.Equal(t, "3", *patch.TimeSpent)
}
