package services

import (
	"context"
	"strings"

	"task-list/internal/domain"
)

// Project returns the tasks whose title contains searchText, ignoring case,
// and that pass the filter at filterIndex. Order is preserved and the input
// is never modified. Any index other than the undone filter keeps every task.
func Project(tasks []domain.Task, searchText string, filterIndex int) []domain.Task {
	filter := domain.StatusFilter(filterIndex)
	needle := strings.ToLower(searchText)

	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesTitle(task.Title, needle) || !filter.Keep(task) {
			continue
		}
		visible = append(visible, task.Clone())
	}
	return visible
}

func matchesTitle(title, lowerNeedle string) bool {
	if lowerNeedle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), lowerNeedle)
}

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	store TaskStore
}

// NewSearchService creates a new SearchService reading from store
func NewSearchService(store TaskStore) SearchService {
	return &searchServiceImpl{store: store}
}

// Visible reads the store and projects it
func (s *searchServiceImpl) Visible(ctx context.Context, query string, filter domain.StatusFilter) ([]domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Project(tasks, query, int(filter)), nil
}

// Counts tallies completed and undone tasks
func (s *searchServiceImpl) Counts(ctx context.Context) (*TaskCounts, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := &TaskCounts{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			counts.Completed++
		} else {
			counts.Undone++
		}
	}
	return counts, nil
}
