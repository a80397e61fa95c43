package cli

import (
	"context"
	"strconv"
	"strings"

	"task-list/internal/domain"
	"task-list/internal/errors"
	"task-list/internal/services"
)

// ComposeCommands edit and commit the session's draft
type ComposeCommands struct {
	app      *App
	composer *services.Composer
}

// NewComposeCommands creates the draft command handlers
func NewComposeCommands(app *App) *ComposeCommands {
	return &ComposeCommands{app: app, composer: app.api.Composer()}
}

// Add starts a fresh draft, titled by the arguments when given
func (c *ComposeCommands) Add(ctx context.Context, args []string) error {
	c.composer.Discard()
	if len(args) > 0 {
		c.composer.SetTitle(strings.Join(args, " "))
	}
	return c.Show(ctx, nil)
}

// Title sets the draft title
func (c *ComposeCommands) Title(ctx context.Context, args []string) error {
	c.composer.SetTitle(strings.Join(args, " "))
	return nil
}

// Describe sets the draft description
func (c *ComposeCommands) Describe(ctx context.Context, args []string) error {
	c.composer.SetDescription(strings.Join(args, " "))
	return nil
}

// Time sets the draft time label
func (c *ComposeCommands) Time(ctx context.Context, args []string) error {
	c.composer.SetTimeLabel(strings.Join(args, " "))
	return nil
}

// Category selects a category by name or cycles when no name is given
func (c *ComposeCommands) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.composer.CycleCategory()
	} else {
		category, err := domain.ParseCategory(strings.Join(args, " "))
		if err != nil {
			return err
		}
		c.composer.SetCategory(category)
	}
	c.app.printf("category: %s\n", c.composer.Draft().Category)
	return nil
}

// Priority selects a priority by name or cycles when no name is given
func (c *ComposeCommands) Priority(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.composer.CyclePriority()
	} else {
		priority, err := domain.ParsePriority(strings.Join(args, " "))
		if err != nil {
			return err
		}
		c.composer.SetPriority(priority)
	}
	c.app.printf("priority: %s\n", c.composer.Draft().Priority)
	return nil
}

// Invite toggles each listed participant index
func (c *ComposeCommands) Invite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("index", "", "usage: invite <index>")
	}
	for _, arg := range args {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return errors.NewInvalidInputError("index", arg, "must be a number")
		}
		c.composer.ToggleParticipant(index)
	}
	c.app.printf("participants: %s\n", participantList(c.composer.Draft().Participants))
	return nil
}

// Recurring sets the flag from on/off or flips it without an argument
func (c *ComposeCommands) Recurring(ctx context.Context, args []string) error {
	recurring := !c.composer.Draft().Recurring
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "yes", "true":
			recurring = true
		case "off", "no", "false":
			recurring = false
		default:
			return errors.NewInvalidInputError("recurring", args[0], "must be on or off")
		}
	}
	c.composer.SetRecurring(recurring)
	c.app.printf("recurring: %t\n", recurring)
	return nil
}

// Show prints the draft
func (c *ComposeCommands) Show(ctx context.Context, args []string) error {
	renderDraft(c.app.out, c.composer.Draft())
	return nil
}

// Commit creates the task; a rejected draft is kept for correction
func (c *ComposeCommands) Commit(ctx context.Context, args []string) error {
	task, err := c.composer.Commit(ctx)
	if err != nil {
		return err
	}
	c.app.printf("created task %s: %s\n", task.ID, task.Title)
	return nil
}

// Discard resets the draft
func (c *ComposeCommands) Discard(ctx context.Context, args []string) error {
	c.composer.Discard()
	c.app.printf("draft discarded\n")
	return nil
}
