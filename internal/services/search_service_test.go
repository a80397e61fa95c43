package services

import (
	"context"
	"testing"

	"task-list/internal/domain"
	"task-list/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id, title string, completed bool) domain.Task {
	return domain.Task{
		ID:           id,
		Title:        title,
		Completed:    completed,
		Category:     domain.CategoryMeeting,
		Priority:     domain.PriorityHigh,
		Participants: domain.NewParticipantSet(0),
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestProject(t *testing.T) {
	tasks := []domain.Task{
		newTask("1", "Project daily stand-up", false),
		newTask("2", "Internia new UI style", true),
		newTask("3", "Weekly Review", false),
		newTask("4", "Interview", false),
	}

	tests := []struct {
		name        string
		searchText  string
		filterIndex int
		want        []string
	}{
		{"empty query undone filter", "", 0, []string{"1", "3", "4"}},
		{"empty query meetings shows all", "", 1, []string{"1", "2", "3", "4"}},
		{"empty query consummation shows all", "", 2, []string{"1", "2", "3", "4"}},
		{"undeclared index shows all", "", 7, []string{"1", "2", "3", "4"}},
		{"case-insensitive match", "INTER", 1, []string{"2", "4"}},
		{"match combined with undone", "inter", 0, []string{"4"}},
		{"no match", "zzz", 1, []string{}},
		{"matches title only", "conference", 1, []string{}},
		{"whitespace is part of the query", " review", 1, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tasks, tt.searchText, tt.filterIndex)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProject_IsPureAndDeterministic(t *testing.T) {
	tasks := []domain.Task{
		newTask("1", "Alpha", false),
		newTask("2", "alphabet", true),
	}
	original := []domain.Task{tasks[0].Clone(), tasks[1].Clone()}

	first := Project(tasks, "ALPHA", 1)
	second := Project(tasks, "ALPHA", 1)

	assert.Equal(t, first, second)
	assert.Equal(t, original, tasks)

	first[0].Title = "mutated"
	assert.Equal(t, "Alpha", tasks[0].Title)
}

func TestProject_CaseInsensitivity(t *testing.T) {
	tasks := []domain.Task{newTask("1", "Buy Milk", false), newTask("2", "sell bread", false)}

	for _, query := range []string{"milk", "MILK", "MiLk"} {
		assert.Equal(t, ids(Project(tasks, "milk", 0)), ids(Project(tasks, query, 0)), query)
	}
}

func TestProject_EmptyInput(t *testing.T) {
	got := Project(nil, "x", 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// Scenarios B and C
func TestSearchService_Visible(t *testing.T) {
	store := setupTaskStore(t)
	search := NewSearchService(store)
	ctx := context.Background()

	for _, title := range []string{"Buy milk", "sell bread"} {
		_, err := store.Create(ctx, draftWithTitle(title))
		require.NoError(t, err)
	}

	visible, err := search.Visible(ctx, "MILK", domain.FilterMeetings)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(visible))

	_, err = store.ToggleComplete(ctx, "1")
	require.NoError(t, err)

	visible, err = search.Visible(ctx, "", domain.FilterUndone)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(visible))

	visible, err = search.Visible(ctx, "", domain.FilterMeetings)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(visible))
}

func TestSearchService_Counts(t *testing.T) {
	store := NewTaskStore(memory.New(), domain.DefaultDirectory())
	search := NewSearchService(store)
	ctx := context.Background()

	counts, err := search.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, TaskCounts{}, *counts)

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, draftWithTitle(title))
		require.NoError(t, err)
	}
	_, err = store.ToggleComplete(ctx, "2")
	require.NoError(t, err)

	counts, err = search.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, TaskCounts{Total: 3, Undone: 2, Completed: 1}, *counts)
}
