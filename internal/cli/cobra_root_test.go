package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"task-list/internal/config"
	"task-list/internal/domain"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, *config.Config, error) {
	t.Helper()
	cfg := config.NewConfig()
	root := NewRootCommand(cfg, NewSession)

	var out bytes.Buffer
	root.SetIO(strings.NewReader(stdin), &out)
	root.SetArgs(args)

	err := root.Execute(context.Background())
	return out.String(), cfg, err
}

func TestRoot_ListTable(t *testing.T) {
	out, _, err := runRoot(t, "", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Project daily stand-up")
	assert.Contains(t, out, "Interview")
	assert.Contains(t, out, "TITLE")
}

func TestRoot_ListJSON(t *testing.T) {
	out, _, err := runRoot(t, "", "list", "inter", "--filter", "Meetings", "--format", "json")
	require.NoError(t, err)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Internia new UI style", tasks[0].Title)
	assert.Equal(t, "Interview", tasks[1].Title)
	assert.Equal(t, []int{2}, tasks[0].Participants.Indices())
}

func TestRoot_ListYAML(t *testing.T) {
	out, _, err := runRoot(t, "", "list", "--format", "yaml", "--filter", "2")
	require.NoError(t, err)

	var tasks []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 4)
	assert.Equal(t, "Weekly Review", tasks[2]["title"])
	assert.Equal(t, "Design project", tasks[2]["category"])
}

func TestRoot_ListCSV(t *testing.T) {
	out, _, err := runRoot(t, "", "list", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"1", "Project daily stand-up", "At the conference center", "9:00 am", "false", "Meeting", "High", "false", "0 1"}, records[1])
}

func TestRoot_ListWithoutSeed(t *testing.T) {
	out, cfg, err := runRoot(t, "", "list", "--seed=false", "--backend", "sqlite")
	require.NoError(t, err)

	assert.Contains(t, out, "No tasks found")
	assert.False(t, cfg.Session.SeedSample)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
}

func TestRoot_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown filter", []string{"list", "--filter", "Someday"}},
		{"unknown format", []string{"list", "--format", "xml"}},
		{"unknown backend", []string{"list", "--backend", "redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRoot_Shell(t *testing.T) {
	script := "add Lunch\ninvite 3\ncommit\nfilter 1\nlist\nquit\n"
	out, _, err := runRoot(t, script, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "created task 5: Lunch")
	assert.Contains(t, out, "Lunch")
}
