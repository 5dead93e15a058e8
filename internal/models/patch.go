package models

// TaskPatch is a partial task document.
// nil pointer => "no change"
// ClearCompletion removes the completion value.
// Subtasks, when non-nil, replaces the whole subtask list.
type TaskPatch struct {
	EmpID     *string
	Project   *string
	Date      *string
	StartDate *string
	DueDate   *string
	EndDate   *string
	Status    *string
	Remarks   *string
	TimeSpent *string

	Completion      *float64
	ClearCompletion bool

	Subtasks *[]Subtask
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.EmpID == nil && p.Project == nil && p.Date == nil &&
		p.StartDate == nil && p.DueDate == nil && p.EndDate == nil &&
		p.Status == nil && p.Remarks == nil && p.TimeSpent == nil &&
		p.Completion == nil && !p.ClearCompletion && p.Subtasks == nil
}

// ApplyTo overwrites the fields present in the patch. Fields absent from
// the patch keep their current value.
func (p TaskPatch) ApplyTo(t *Task) {
	setString(&t.EmpID, p.EmpID)
	setString(&t.Project, p.Project)
	setString(&t.Date, p.Date)
	setString(&t.StartDate, p.StartDate)
	setString(&t.DueDate, p.DueDate)
	setString(&t.EndDate, p.EndDate)
	setString(&t.Status, p.Status)
	setString(&t.Remarks, p.Remarks)
	setString(&t.TimeSpent, p.TimeSpent)

	if p.ClearCompletion {
		t.Completion = nil
	}
	if p.Completion != nil {
		v := *p.Completion
		t.Completion = &v
	}

	if p.Subtasks != nil {
		subtasks := make([]Subtask, len(*p.Subtasks))
		copy(subtasks, *p.Subtasks)
		t.Subtasks = subtasks
	}
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
