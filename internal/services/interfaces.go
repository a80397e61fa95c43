package services

import (
	"context"

	"task-list/internal/domain"
)

// TaskStore owns the session's task collection and is its only mutator
type TaskStore interface {
	// Create validates the draft and appends a new incomplete task under a fresh id
	Create(ctx context.Context, draft domain.Draft) (*domain.Task, error)
	// ToggleComplete flips the completed flag of the task with id
	ToggleComplete(ctx context.Context, id string) (*domain.Task, error)
	// List returns every task in insertion order
	List(ctx context.Context) ([]domain.Task, error)
}

// SearchService answers the combined search and filter query
type SearchService interface {
	Visible(ctx context.Context, query string, filter domain.StatusFilter) ([]domain.Task, error)
	Counts(ctx context.Context) (*TaskCounts, error)
}

// IDGenerator hands out task identifiers that are never reused
type IDGenerator interface {
	Next() string
}

// TaskCounts summarises the collection for headers and tab badges
type TaskCounts struct {
	Total     int `json:"total" yaml:"total"`
	Undone    int `json:"undone" yaml:"undone"`
	Completed int `json:"completed" yaml:"completed"`
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Directory *domain.Directory
	Store     TaskStore
	Search    SearchService
}
