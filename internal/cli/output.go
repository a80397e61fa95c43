package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"task-list/internal/domain"
	"task-list/internal/errors"
)

var csvHeader = []string{"id", "title", "description", "time", "completed", "category", "priority", "recurring", "participants"}

// renderTasks writes tasks to w in one of the list formats
func renderTasks(w io.Writer, format string, tasks []domain.Task) error {
	switch strings.ToLower(format) {
	case "", "table":
		return renderTable(w, tasks)
	case "json":
		return renderJSON(w, tasks)
	case "yaml":
		return renderYAML(w, tasks)
	case "csv":
		return renderCSV(w, tasks)
	default:
		return errors.NewInvalidInputError("format", format, "must be one of table, json, yaml, csv")
	}
}

func renderTable(w io.Writer, tasks []domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			task.ID,
			checkbox(task.Completed),
			task.Title,
			task.TimeLabel,
			string(task.Category),
			string(task.Priority),
			participantList(task.Participants),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DONE", "TITLE", "TIME", "CATEGORY", "PRIORITY", "WITH").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderJSON(w io.Writer, tasks []domain.Task) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tasks)
}

func renderYAML(w io.Writer, tasks []domain.Task) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(tasks); err != nil {
		return err
	}
	return encoder.Close()
}

func renderCSV(w io.Writer, tasks []domain.Task) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, task := range tasks {
		record := []string{
			task.ID,
			task.Title,
			task.Description,
			task.TimeLabel,
			strconv.FormatBool(task.Completed),
			string(task.Category),
			string(task.Priority),
			strconv.FormatBool(task.Recurring),
			participantList(task.Participants),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func participantList(set domain.ParticipantSet) string {
	indices := set.Indices()
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, " ")
}

// renderDraft prints the composer state one field per line
func renderDraft(w io.Writer, draft domain.Draft) {
	fmt.Fprintf(w, "title:        %s\n", draft.Title)
	if draft.Description != "" {
		fmt.Fprintf(w, "description:  %s\n", draft.Description)
	}
	if draft.TimeLabel != "" {
		fmt.Fprintf(w, "time:         %s\n", draft.TimeLabel)
	}
	fmt.Fprintf(w, "category:     %s\n", draft.Category)
	fmt.Fprintf(w, "priority:     %s\n", draft.Priority)
	fmt.Fprintf(w, "participants: %s\n", participantList(draft.Participants))
	fmt.Fprintf(w, "recurring:    %t\n", draft.Recurring)
}
