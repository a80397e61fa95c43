// Package repository defines the storage boundary behind the task store.
// Implementations hold tasks for a single session only.
package repository

import (
	"context"

	"task-list/internal/domain"
)

// Repository stores tasks in insertion order. Implementations must hand
// out copies so callers cannot mutate stored state, and must report a
// NotFound AppError for unknown ids.
type Repository interface {
	// Insert appends a task. The id must not already be present.
	Insert(ctx context.Context, task domain.Task) error
	// Get returns the task with the given id.
	Get(ctx context.Context, id string) (domain.Task, error)
	// Update replaces an existing task, keeping its position.
	Update(ctx context.Context, task domain.Task) error
	// List returns every task in insertion order.
	List(ctx context.Context) ([]domain.Task, error)
	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)

	Close() error
}

// Backend names accepted by configuration.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)
