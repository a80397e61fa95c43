package domain

import "strings"

// Task is a single actionable item. Tasks handed out by the store are
// copies; mutating one never affects stored state.
type Task struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	Description  string         `json:"description" yaml:"description"`
	TimeLabel    string         `json:"time_label" yaml:"time_label"`
	Completed    bool           `json:"completed" yaml:"completed"`
	Category     Category       `json:"category" yaml:"category"`
	Priority     Priority       `json:"priority" yaml:"priority"`
	Recurring    bool           `json:"recurring" yaml:"recurring"`
	Participants ParticipantSet `json:"participants" yaml:"participants"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	t.Participants = t.Participants.Clone()
	return t
}

// IsValid checks the invariants every stored task holds.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != "" && t.Category.IsValid() && t.Priority.IsValid()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// Draft holds the fields of a task that has not been committed yet.
type Draft struct {
	Title        string
	Description  string
	TimeLabel    string
	Category     Category
	Priority     Priority
	Participants ParticipantSet
	Recurring    bool
}

// NewDraft returns a draft carrying the default selections.
func NewDraft(directory *Directory) Draft {
	return Draft{
		Category:     CategoryOptions().Default,
		Priority:     PriorityOptions().Default,
		Participants: NewParticipantSet(directory.Default()),
	}
}

// Task builds the committed form of the draft under the given id. Unset
// enumerations fall back to their defaults and the title is trimmed.
func (d Draft) Task(id string) Task {
	return Task{
		ID:           id,
		Title:        strings.TrimSpace(d.Title),
		Description:  d.Description,
		TimeLabel:    d.TimeLabel,
		Category:     d.Category.OrDefault(),
		Priority:     d.Priority.OrDefault(),
		Recurring:    d.Recurring,
		Participants: d.Participants.Clone(),
	}
}
