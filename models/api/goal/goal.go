package goalapimodels

import (
	"strings"
	"time"

	"timetracker-backend/models"
)

type TaskView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Hour  string `json:"hour"`
	Color string `json:"color"`
}

type ProjectData struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tasks       []TaskView `json:"tasks"`
}

func (r ProjectData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("project name is required")
	}
	return nil
}

type ProjectView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tasks       []TaskView `json:"tasks"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AddTaskRequest struct {
	Name  string `json:"name"`
	Hour  string `json:"hour"`
	Color string `json:"color"`
}

func (r AddTaskRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("task name is required")
	}
	return nil
}
