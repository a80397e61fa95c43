package services

import (
	"context"
	"testing"

	"task-list/internal/domain"
	"task-list/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupComposer(t *testing.T) (*Composer, TaskStore) {
	t.Helper()
	store := setupTaskStore(t)
	return NewComposer(store, domain.DefaultDirectory()), store
}

func TestComposer_DefaultDraft(t *testing.T) {
	composer, _ := setupComposer(t)

	draft := composer.Draft()
	assert.Equal(t, "", draft.Title)
	assert.Equal(t, domain.CategoryMeeting, draft.Category)
	assert.Equal(t, domain.PriorityHigh, draft.Priority)
	assert.Equal(t, []int{0}, draft.Participants.Indices())
	assert.False(t, draft.Recurring)
}

// Scenario E
func TestComposer_CommitAndReset(t *testing.T) {
	composer, store := setupComposer(t)
	ctx := context.Background()

	composer.SetTitle("Lunch")
	composer.SetDescription("Corner bistro")
	composer.SetTimeLabel("12:30 pm")
	composer.ToggleParticipant(2)
	composer.ToggleParticipant(0)
	composer.SetPriority(domain.PriorityLow)
	composer.SetRecurring(true)

	task, err := composer.Commit(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Lunch", task.Title)
	assert.Equal(t, "Corner bistro", task.Description)
	assert.Equal(t, "12:30 pm", task.TimeLabel)
	assert.Equal(t, []int{2}, task.Participants.Indices())
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.Equal(t, domain.CategoryMeeting, task.Category)
	assert.True(t, task.Recurring)
	assert.False(t, task.Completed)

	assert.Equal(t, domain.NewDraft(domain.DefaultDirectory()), composer.Draft())

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestComposer_CommitFailureKeepsDraft(t *testing.T) {
	composer, store := setupComposer(t)
	ctx := context.Background()

	composer.SetTitle("   ")
	composer.SetCategory(domain.CategoryReview)
	composer.ToggleParticipant(3)
	before := composer.Draft()

	task, err := composer.Commit(ctx)
	assert.Nil(t, task)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Equal(t, before, composer.Draft())

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestComposer_Discard(t *testing.T) {
	composer, store := setupComposer(t)

	composer.SetTitle("Draft only")
	composer.CycleCategory()
	composer.Discard()

	assert.Equal(t, domain.NewDraft(domain.DefaultDirectory()), composer.Draft())
	tasks, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestComposer_Cycle(t *testing.T) {
	composer, _ := setupComposer(t)

	composer.CycleCategory()
	composer.CyclePriority()
	assert.Equal(t, domain.CategoryReview, composer.Draft().Category)
	assert.Equal(t, domain.PriorityMedium, composer.Draft().Priority)

	for i := 0; i < 3; i++ {
		composer.CycleCategory()
	}
	assert.Equal(t, domain.CategoryMeeting, composer.Draft().Category, "cycling wraps around")
}

func TestComposer_DraftIsCopy(t *testing.T) {
	composer, _ := setupComposer(t)

	draft := composer.Draft()
	draft.Title = "changed"
	draft.Participants = draft.Participants.Toggle(1)

	assert.Equal(t, "", composer.Draft().Title)
	assert.Equal(t, []int{0}, composer.Draft().Participants.Indices())
}
