package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-list/internal/domain"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.api.Today(m.now())))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.mode == modeCompose {
		b.WriteString(m.renderComposer())
	} else {
		b.WriteString(m.renderTasks())
	}

	b.WriteString("\n")
	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render(m.errorMsg))
		b.WriteString("\n")
	} else if m.infoMsg != "" {
		b.WriteString(infoStyle.Render(m.infoMsg))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help()))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.api.Filters()))
	for _, filter := range m.api.Filters() {
		style := tabStyle
		if filter == m.api.Filter() {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(filter.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTasks() string {
	if len(m.tasks) == 0 {
		return mutedStyle.Render("  No tasks") + "\n"
	}

	var b strings.Builder
	for i, task := range m.tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		box := "[ ]"
		title := task.Title
		if task.Completed {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		meta := mutedStyle.Render(fmt.Sprintf("%s · %s · %s", task.Category, task.Priority, avatars(task.Participants, m.api.Directory())))
		line := fmt.Sprintf("%s%s %s", pointer, box, title)
		if task.TimeLabel != "" {
			line += "  " + mutedStyle.Render(task.TimeLabel)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if task.Description != "" {
			b.WriteString(rowStyle.Render("    " + task.Description))
			b.WriteString("\n")
		}
		b.WriteString(rowStyle.Render("    " + meta))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderComposer() string {
	draft := m.api.Composer().Draft()

	lines := []string{
		m.title.View(),
		"",
		"Category:  " + optionRow(domain.CategoryOptions().Strings(), string(draft.Category)),
		"Priority:  " + optionRow(domain.PriorityOptions().Strings(), string(draft.Priority)),
		"Invite:    " + participantRow(draft.Participants, m.api.Directory()),
		fmt.Sprintf("Recurring: %s", onOff(draft.Recurring)),
	}
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func optionRow(values []string, selected string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v == selected {
			parts[i] = selectedStyle.Render("[" + v + "]")
		} else {
			parts[i] = " " + v + " "
		}
	}
	return strings.Join(parts, " ")
}

func participantRow(set domain.ParticipantSet, directory *domain.Directory) string {
	parts := make([]string, 0, directory.Len())
	for _, p := range directory.All() {
		label := fmt.Sprintf("%d", p.Index+1)
		if set.Contains(p.Index) {
			parts = append(parts, selectedStyle.Render("●"+label))
		} else {
			parts = append(parts, "○"+label)
		}
	}
	return strings.Join(parts, " ")
}

func avatars(set domain.ParticipantSet, directory *domain.Directory) string {
	marks := make([]string, 0, set.Len())
	for _, index := range set.Indices() {
		if directory.Contains(index) {
			marks = append(marks, fmt.Sprintf("●%d", index+1))
		}
	}
	if len(marks) == 0 {
		return "nobody"
	}
	return strings.Join(marks, " ")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) help() string {
	switch m.mode {
	case modeSearch:
		return "type to search · enter keep · esc clear"
	case modeCompose:
		if m.editingTitle {
			return "type a title · tab options · enter create · esc discard"
		}
		return "c category · p priority · 1-4 invite · r recurring · tab title · enter create · esc discard"
	default:
		return "↑/↓ move · enter toggle · tab filter · / search · n new · q quit"
	}
}
