package services

import (
	"math"
	"strings"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type StatusCounts struct {
	Completed  int `json:"Completed"`
	InProgress int `json:"In Progress"`
	Pending    int `json:"Pending"`
}

// Add counts status in its canonical bucket.
func (c *StatusCounts) Add(status string) {
	switch models.StatusBucket(status) {
	case models.StatusCompleted:
		c.Completed++
	case models.StatusInProgress:
		c.InProgress++
	default:
		c.Pending++
	}
}

func (c StatusCounts) Total() int {
	return c.Completed + c.InProgress + c.Pending
}

type ProjectStatus struct {
	Project string `json:"project"`
	StatusCounts
}

type CompletionSummary struct {
	Mean      int `json:"mean"`
	Remaining int `json:"remaining"`
}

type Rollup struct {
	ByProjectStatus           []ProjectStatus   `json:"byProjectStatus"`
	OverallCompletion         CompletionSummary `json:"overallCompletion"`
	SubtaskStatusDistribution StatusCounts      `json:"subtaskStatusDistribution"`
	TotalTasks                int               `json:"totalTasks"`
	CompletedTasks            int               `json:"completedTasks"`
	TotalSubtasks             int               `json:"totalSubtasks"`
}

// ComputeRollup summarizes an already filtered task collection. Projects
// are listed in order of first appearance. Tasks without a completion are
// left out of the mean rather than counted as zero.
func ComputeRollup(tasks []*models.Task) Rollup {
	rollup := Rollup{ByProjectStatus: []ProjectStatus{}}
	if len(tasks) == 0 {
		return rollup
	}

	projects := make(map[string]int)
	var completionSum float64
	var completionCount int

	for _, task := range tasks {
		project := task.Project
		if strings.TrimSpace(project) == "" {
			project = models.UnassignedProject
		}
		i, ok := projects[project]
		if !ok {
			i = len(rollup.ByProjectStatus)
			projects[project] = i
			rollup.ByProjectStatus = append(rollup.ByProjectStatus, ProjectStatus{Project: project})
		}
		rollup.ByProjectStatus[i].Add(task.Status)

		if models.StatusBucket(task.Status) == models.StatusCompleted {
			rollup.CompletedTasks++
		}

		if c := task.Completion; c != nil && !math.IsNaN(*c) && !math.IsInf(*c, 0) {
			completionSum += *c
			completionCount++
		}

		for _, subtask := range task.Subtasks {
			rollup.SubtaskStatusDistribution.Add(subtask.Status)
		}
	}

	var mean float64
	if completionCount > 0 {
		mean = completionSum / float64(completionCount)
	}
	rollup.OverallCompletion = CompletionSummary{
		Mean:      roundHalfUp(mean),
		Remaining: max(0, roundHalfUp(100-mean)),
	}
	rollup.TotalTasks = len(tasks)
	rollup.TotalSubtasks = rollup.SubtaskStatusDistribution.Total()

	return rollup
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
