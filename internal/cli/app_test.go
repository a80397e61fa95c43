package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-list/internal/api"
	"task-list/internal/config"
	"task-list/internal/domain"
	"task-list/internal/logging"
	"task-list/internal/repository/memory"
	"task-list/internal/services"
	"task-list/internal/validation"
)

func setupTestApp(t *testing.T, seed bool) (*App, api.API, *bytes.Buffer) {
	t.Helper()
	container := services.NewServiceContainer(memory.New(), domain.DefaultDirectory(), validation.NewTaskValidator(), logging.NopLogger())
	session := api.New(container)
	if seed {
		require.NoError(t, session.SeedSample(context.Background()))
	}
	var out bytes.Buffer
	return NewApp(session, config.NewConfig(), WithOutput(&out)), session, &out
}

func TestApp_Execute(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr bool
		check   func(t *testing.T, session api.API, out string)
	}{
		{
			name:  "compose and commit",
			lines: []string{"add Call Bob", "priority low", "invite 2", "recurring", "commit"},
			check: func(t *testing.T, session api.API, out string) {
				tasks, err := session.Tasks(context.Background())
				require.NoError(t, err)
				require.Len(t, tasks, 1)
				assert.Equal(t, "Call Bob", tasks[0].Title)
				assert.Equal(t, domain.PriorityLow, tasks[0].Priority)
				assert.Equal(t, []int{0, 2}, tasks[0].Participants.Indices())
				assert.True(t, tasks[0].Recurring)
				assert.Contains(t, out, "created task 1: Call Bob")
			},
		},
		{
			name:  "category by multi-word name",
			lines: []string{"title Sketch", "category design project", "commit"},
			check: func(t *testing.T, session api.API, out string) {
				tasks, err := session.Tasks(context.Background())
				require.NoError(t, err)
				require.Len(t, tasks, 1)
				assert.Equal(t, domain.CategoryDesignProject, tasks[0].Category)
			},
		},
		{
			name:    "empty title is rejected",
			lines:   []string{"commit"},
			wantErr: true,
		},
		{
			name:    "unknown command",
			lines:   []string{"frobnicate"},
			wantErr: true,
		},
		{
			name:    "bad invite index",
			lines:   []string{"invite two"},
			wantErr: true,
		},
		{
			name:  "blank line is ignored",
			lines: []string{"   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, session, out := setupTestApp(t, false)
			ctx := context.Background()

			var err error
			for _, line := range tt.lines {
				if err = app.Execute(ctx, line); err != nil {
					break
				}
			}

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, session, out.String())
			}
		})
	}
}

func TestApp_RunContinuesAfterErrors(t *testing.T) {
	app, session, out := setupTestApp(t, true)
	timeNow = func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	script := strings.Join([]string{
		"toggle 9",
		"toggle 2",
		"filter Meetings",
		"search inter",
		"counts",
		"quit",
		"toggle 1",
	}, "\n")

	err := app.Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Wednesday, 14 Oct 2026")
	assert.Contains(t, output, "error: task not found: 9")
	assert.Contains(t, output, "[x] 2: Internia new UI style")
	assert.Contains(t, output, "4 tasks, 3 undone, 1 done")
	assert.Equal(t, "inter", session.Search())
	assert.Equal(t, domain.FilterMeetings, session.Filter())

	tasks, err := session.Tasks(context.Background())
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed, "commands after quit must not run")
}

func TestApp_RunStopsAtEOF(t *testing.T) {
	app, _, out := setupTestApp(t, false)

	err := app.Run(context.Background(), strings.NewReader("help"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "commands:")
	assert.Contains(t, out.String(), "toggle <id>")
}

func TestApp_DraftAndDiscard(t *testing.T) {
	app, session, out := setupTestApp(t, false)
	ctx := context.Background()

	require.NoError(t, app.Execute(ctx, "add Lunch"))
	require.NoError(t, app.Execute(ctx, "describe At the corner bistro"))
	require.NoError(t, app.Execute(ctx, "time 12:30 pm"))
	require.NoError(t, app.Execute(ctx, "draft"))
	assert.Contains(t, out.String(), "description:  At the corner bistro")
	assert.Contains(t, out.String(), "time:         12:30 pm")

	require.NoError(t, app.Execute(ctx, "discard"))
	assert.Equal(t, domain.NewDraft(session.Directory()), session.Composer().Draft())
}

func TestCommandRegistry_Names(t *testing.T) {
	app, _, _ := setupTestApp(t, false)

	names := app.registry.Names()
	for _, want := range []string{"add", "commit", "discard", "filter", "list", "search", "toggle", "quit"} {
		assert.Contains(t, names, want)
	}
	assert.ErrorIs(t, app.Execute(context.Background(), "exit"), errQuit)
}
