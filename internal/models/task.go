package models

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// UnassignedProject labels tasks that carry no project.
const UnassignedProject = "Unassigned"

type Task struct {
	ID         string    `json:"id"`
	EmpID      string    `json:"empId"`
	Project    string    `json:"project,omitempty"`
	Date       string    `json:"date,omitempty"`
	StartDate  string    `json:"startDate,omitempty"`
	DueDate    string    `json:"dueDate,omitempty"`
	EndDate    string    `json:"endDate,omitempty"`
	Completion *float64  `json:"completion,omitempty"`
	Status     string    `json:"status,omitempty"`
	Remarks    string    `json:"remarks,omitempty"`
	TimeSpent  string    `json:"timeSpent,omitempty"`
	Subtasks   []Subtask `json:"subtasks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Subtask has no identity outside its parent task. Every field is always
// populated, so the JSON form never omits a key.
type Subtask struct {
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Completion float64 `json:"completion"`
	Remarks    string  `json:"remarks"`
	StartDate  string  `json:"startDate"`
	DueDate    string  `json:"dueDate"`
	EndDate    string  `json:"endDate"`
	TimeSpent  string  `json:"timeSpent"`
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.Completion != nil {
		v := *t.Completion
		c.Completion = &v
	}
	c.Subtasks = make([]Subtask, len(t.Subtasks))
	copy(c.Subtasks, t.Subtasks)
	return &c
}

// FilterDate is the date a task is filed under: Date, or StartDate when
// Date is empty.
func (t *Task) FilterDate() string {
	if t.Date != "" {
		return t.Date
	}
	return t.StartDate
}

// StatusBucket maps any status string onto the canonical vocabulary.
// Unknown and empty values count as pending.
func StatusBucket(status string) string {
	switch status {
	case StatusInProgress, StatusCompleted:
		return status
	default:
		return StatusPending
	}
}
