// Package api is the boundary a presentation layer drives: it holds the
// current search text and filter alongside the session's services.
package api

import (
	"context"
	"sync"
	"time"

	"task-list/internal/domain"
	"task-list/internal/errors"
	"task-list/internal/services"
)

// DefaultDateFormat renders headers like "Monday, 14 Oct 2026".
const DefaultDateFormat = "Monday, 02 Jan 2006"

// API defines every operation a task list screen needs.
type API interface {
	// Query state
	SetSearch(text string)
	Search() string
	SetFilter(index int) error
	Filter() domain.StatusFilter
	Filters() []domain.StatusFilter

	// Queries
	Visible(ctx context.Context) ([]domain.Task, error)
	Tasks(ctx context.Context) ([]domain.Task, error)
	Counts(ctx context.Context) (*services.TaskCounts, error)

	// Mutations
	Toggle(ctx context.Context, id string) (*domain.Task, error)
	Composer() *services.Composer
	SeedSample(ctx context.Context) error

	// Presentation helpers
	Directory() *domain.Directory
	Today(now time.Time) string
}

type session struct {
	mu         sync.RWMutex
	services   *services.ServiceContainer
	composer   *services.Composer
	dateFormat string
	searchText string
	filter     domain.StatusFilter
}

// Option customises a session
type Option func(*session)

// WithDateFormat sets the layout used by Today
func WithDateFormat(layout string) Option {
	return func(s *session) {
		if layout != "" {
			s.dateFormat = layout
		}
	}
}

// New creates a session over the given services. The search text starts
// empty and the filter starts at Undone.
func New(container *services.ServiceContainer, opts ...Option) API {
	s := &session{
		services:   container,
		composer:   services.NewComposer(container.Store, container.Directory),
		dateFormat: DefaultDateFormat,
		filter:     domain.FilterUndone,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *session) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
}

func (s *session) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText
}

// SetFilter selects the filter at index; indices outside the declared
// filters are rejected and the current filter is kept.
func (s *session) SetFilter(index int) error {
	filter := domain.StatusFilter(index)
	if !filter.IsDeclared() {
		return errors.NewInvalidInputError("filter", index, "index out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	return nil
}

func (s *session) Filter() domain.StatusFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *session) Filters() []domain.StatusFilter {
	return domain.StatusFilters()
}

func (s *session) Visible(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	query, filter := s.searchText, s.filter
	s.mu.RUnlock()
	return s.services.Search.Visible(ctx, query, filter)
}

func (s *session) Tasks(ctx context.Context) ([]domain.Task, error) {
	return s.services.Store.List(ctx)
}

func (s *session) Counts(ctx context.Context) (*services.TaskCounts, error) {
	return s.services.Search.Counts(ctx)
}

func (s *session) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	return s.services.Store.ToggleComplete(ctx, id)
}

func (s *session) Composer() *services.Composer {
	return s.composer
}

func (s *session) Directory() *domain.Directory {
	return s.services.Directory
}

func (s *session) Today(now time.Time) string {
	return now.Format(s.dateFormat)
}
