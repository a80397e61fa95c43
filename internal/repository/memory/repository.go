// Package memory is the default slice-backed task repository.
package memory

import (
	"context"
	"sync"

	"task-list/internal/domain"
	"task-list/internal/errors"
)

// Repository keeps tasks in a slice with an id index.
type Repository struct {
	mu    sync.RWMutex
	tasks []domain.Task
	index map[string]int
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{
		tasks: make([]domain.Task, 0),
		index: make(map[string]int),
	}
}

// Insert appends a copy of task.
func (r *Repository) Insert(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[task.ID]; exists {
		return errors.NewInvalidInputError("id", task.ID, "already in use")
	}
	r.index[task.ID] = len(r.tasks)
	r.tasks = append(r.tasks, task.Clone())
	return nil
}

// Get returns a copy of the task with id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return domain.Task{}, errors.NewNotFoundError("task", id)
	}
	return r.tasks[pos].Clone(), nil
}

// Update overwrites the stored task sharing task.ID.
func (r *Repository) Update(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[task.ID]
	if !ok {
		return errors.NewNotFoundError("task", task.ID)
	}
	r.tasks[pos] = task.Clone()
	return nil
}

// List returns copies of all tasks in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, len(r.tasks))
	for i, task := range r.tasks {
		out[i] = task.Clone()
	}
	return out, nil
}

// Count returns the number of stored tasks.
func (r *Repository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

// Close is a no-op; the tasks live as long as the repository value.
func (r *Repository) Close() error {
	return nil
}
