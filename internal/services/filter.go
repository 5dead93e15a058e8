package services

import (
	"github.com/adanyl0v/go-task-tracker/internal/daterange"
	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// FilterTasks returns the tasks that fall inside rng and, when match is
// set, whose matched field equals match.Value ignoring case. A task is
// dated by Date, or StartDate when Date is empty; tasks without a usable
// date only survive an unbounded range. The input slice and its tasks are
// not modified.
func FilterTasks(tasks []*models.Task, rng daterange.Range, match *models.MatchKey) []*models.Task {
	filtered := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if match != nil && !match.Matches(task) {
			continue
		}
		if !inRange(task, rng) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

func inRange(task *models.Task, rng daterange.Range) bool {
	if rng.Unbounded {
		return true
	}

	day, err := daterange.ParseDay(task.FilterDate())
	if err != nil {
		return false
	}
	return rng.Contains(day)
}
