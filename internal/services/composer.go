package services

import (
	"context"
	"sync"

	"task-list/internal/domain"
)

// Composer accumulates the fields of a task being authored and commits it
// to the store as one unit.
type Composer struct {
	mu        sync.Mutex
	store     TaskStore
	directory *domain.Directory
	draft     domain.Draft
}

// NewComposer returns a composer holding the default draft
func NewComposer(store TaskStore, directory *domain.Directory) *Composer {
	return &Composer{
		store:     store,
		directory: directory,
		draft:     domain.NewDraft(directory),
	}
}

func (c *Composer) update(fn func(d *domain.Draft)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.draft)
}

// SetTitle replaces the draft title. Validation waits until Commit.
func (c *Composer) SetTitle(title string) {
	c.update(func(d *domain.Draft) { d.Title = title })
}

// SetDescription replaces the draft description
func (c *Composer) SetDescription(description string) {
	c.update(func(d *domain.Draft) { d.Description = description })
}

// SetTimeLabel replaces the free-form time label
func (c *Composer) SetTimeLabel(label string) {
	c.update(func(d *domain.Draft) { d.TimeLabel = label })
}

// SetCategory selects the draft category
func (c *Composer) SetCategory(category domain.Category) {
	c.update(func(d *domain.Draft) { d.Category = category })
}

// SetPriority selects the draft priority
func (c *Composer) SetPriority(priority domain.Priority) {
	c.update(func(d *domain.Draft) { d.Priority = priority })
}

// CycleCategory advances to the next category, wrapping around
func (c *Composer) CycleCategory() {
	c.update(func(d *domain.Draft) { d.Category = domain.CategoryOptions().Next(d.Category) })
}

// CyclePriority advances to the next priority, wrapping around
func (c *Composer) CyclePriority() {
	c.update(func(d *domain.Draft) { d.Priority = domain.PriorityOptions().Next(d.Priority) })
}

// ToggleParticipant adds index to the draft participants, or removes it if present
func (c *Composer) ToggleParticipant(index int) {
	c.update(func(d *domain.Draft) { d.Participants = d.Participants.Toggle(index) })
}

// SetRecurring sets the recurring flag
func (c *Composer) SetRecurring(recurring bool) {
	c.update(func(d *domain.Draft) { d.Recurring = recurring })
}

// Draft returns a copy of the current draft
func (c *Composer) Draft() domain.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.draft
	d.Participants = d.Participants.Clone()
	return d
}

// Commit hands the draft to the store. On success the draft is reset; on
// failure it is left as it was so the user can correct it.
func (c *Composer) Commit(ctx context.Context) (*domain.Task, error) {
	draft := c.Draft()

	task, err := c.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.Discard()
	return task, nil
}

// Discard resets the draft without touching the store
func (c *Composer) Discard() {
	c.update(func(d *domain.Draft) { *d = domain.NewDraft(c.directory) })
}
