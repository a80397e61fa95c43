package cli

import (
	"context"
	"strings"

	"task-list/internal/domain"
	"task-list/internal/errors"
)

// QueryCommands change what the session shows and toggle tasks
type QueryCommands struct {
	app *App
}

// NewQueryCommands creates the search, filter and toggle handlers
func NewQueryCommands(app *App) *QueryCommands {
	return &QueryCommands{app: app}
}

// Toggle flips the completed flag of each listed task
func (c *QueryCommands) Toggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("id", "", "usage: toggle <id>")
	}
	for _, id := range args {
		task, err := c.app.api.Toggle(ctx, id)
		if err != nil {
			return err
		}
		c.app.printf("%s %s: %s\n", checkbox(task.Completed), task.ID, task.Title)
	}
	return nil
}

// Search replaces the search text; no arguments clears it
func (c *QueryCommands) Search(ctx context.Context, args []string) error {
	c.app.api.SetSearch(strings.Join(args, " "))
	return NewListCommand(c.app).Execute(ctx, nil)
}

// Filter selects a status filter by name or index
func (c *QueryCommands) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.app.printf("filter: %s\n", c.app.api.Filter())
		return nil
	}
	filter, err := domain.ParseStatusFilter(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := c.app.api.SetFilter(int(filter)); err != nil {
		return err
	}
	return NewListCommand(c.app).Execute(ctx, nil)
}

// Counts prints the totals
func (c *QueryCommands) Counts(ctx context.Context, args []string) error {
	counts, err := c.app.api.Counts(ctx)
	if err != nil {
		return err
	}
	c.app.printf("%d tasks, %d undone, %d done\n", counts.Total, counts.Undone, counts.Completed)
	return nil
}
