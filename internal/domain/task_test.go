package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft(t *testing.T) {
	draft := NewDraft(DefaultDirectory())

	assert.Equal(t, "", draft.Title)
	assert.Equal(t, CategoryMeeting, draft.Category)
	assert.Equal(t, PriorityHigh, draft.Priority)
	assert.Equal(t, []int{0}, draft.Participants.Indices())
	assert.False(t, draft.Recurring)
}

func TestDraft_Task(t *testing.T) {
	tests := []struct {
		name     string
		draft    Draft
		expected Task
	}{
		{
			name: "trims title and keeps fields",
			draft: Draft{
				Title:        "  Stand-up  ",
				TimeLabel:    "9:00 am",
				Category:     CategoryReview,
				Priority:     PriorityLow,
				Participants: NewParticipantSet(1, 0),
				Recurring:    true,
			},
			expected: Task{
				ID:           "7",
				Title:        "Stand-up",
				TimeLabel:    "9:00 am",
				Category:     CategoryReview,
				Priority:     PriorityLow,
				Participants: NewParticipantSet(0, 1),
				Recurring:    true,
			},
		},
		{
			name:  "unset enumerations take defaults",
			draft: Draft{Title: "Retro", Participants: NewParticipantSet()},
			expected: Task{
				ID:           "7",
				Title:        "Retro",
				Category:     CategoryMeeting,
				Priority:     PriorityHigh,
				Participants: NewParticipantSet(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.draft.Task("7")
			assert.Equal(t, tt.expected, result)
			assert.False(t, result.Completed)
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task",
			task:     Task{ID: "1", Title: "Interview", Category: CategoryMeeting, Priority: PriorityNone},
			expected: true,
		},
		{
			name:     "empty title",
			task:     Task{ID: "1", Title: "", Category: CategoryMeeting, Priority: PriorityHigh},
			expected: false,
		},
		{
			name:     "whitespace title",
			task:     Task{ID: "1", Title: "  \t ", Category: CategoryMeeting, Priority: PriorityHigh},
			expected: false,
		},
		{
			name:     "free-form category",
			task:     Task{ID: "1", Title: "Party", Category: "Party", Priority: PriorityHigh},
			expected: false,
		},
		{
			name:     "unset priority",
			task:     Task{ID: "1", Title: "Party", Category: CategoryMeeting},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Clone(t *testing.T) {
	original := Task{ID: "1", Title: "Weekly Review", Participants: NewParticipantSet(1, 3)}

	clone := original.Clone()
	clone.Participants = clone.Participants.Toggle(2)
	clone.Title = "changed"

	assert.Equal(t, "Weekly Review", original.Title)
	assert.Equal(t, []int{1, 3}, original.Participants.Indices())
	assert.Equal(t, []int{1, 2, 3}, clone.Participants.Indices())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Interview", Task{Title: "Interview"}.String())
}
