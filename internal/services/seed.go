package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type seedFile struct {
	Tasks []map[string]any `yaml:"tasks"`
}

// DecodeSeed reads task fixtures from a YAML document of the form
//
//	tasks:
//	  - empId: E1
//	    project: Alpha
//	    subtasks:
//	      - title: Design
//
// Each entry goes through ParseTaskPatch, so fixtures obey the same rules
// as API payloads.
func DecodeSeed(r io.Reader) ([]models.TaskPatch, error) {
	var file seedFile
	err := yaml.NewDecoder(r).Decode(&file)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	patches := make([]models.TaskPatch, 0, len(file.Tasks))
	for i, doc := range file.Tasks {
		body, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode seed task %d: %w", i, err)
		}

		patch, err := ParseTaskPatch(body)
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i, err)
		}
		patches = append(patches, patch)
	}
	return patches, nil
}

// SeedTasks creates every fixture and returns how many were stored. It
// stops at the first failure.
func SeedTasks(ctx context.Context, tasks TaskService, patches []models.TaskPatch) (int, error) {
	for i, patch := range patches {
		_, err := tasks.CreateTask(ctx, patch)
		if err != nil {
			return i, fmt.Errorf("failed to create seed task %d: %w", i, err)
		}
	}
	return len(patches), nil
}
