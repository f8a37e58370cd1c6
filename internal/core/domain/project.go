package domain

import (
	"fmt"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, st := range ProjectStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown project status %q", ErrValidation, s)
}

// Project is a unit of work for one client.
type Project struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	ClientID int64         `json:"client_id"`
	Status   ProjectStatus `json:"status"`
	Deadline time.Time     `json:"deadline"`
	Budget   float64       `json:"budget"`
}
