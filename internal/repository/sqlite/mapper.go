package sqlite

import (
	"task-list/internal/domain"
)

// TaskMapper handles conversion between domain tasks and stored rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRow converts a domain Task to a row. Seq is assigned by the database.
func (m *TaskMapper) ToRow(task domain.Task) TaskRow {
	return TaskRow{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		TimeLabel:    task.TimeLabel,
		Completed:    task.Completed,
		Category:     string(task.Category),
		Priority:     string(task.Priority),
		Recurring:    task.Recurring,
		Participants: FormatParticipantsForDB(task.Participants),
	}
}

// FromRow converts a row to a domain Task.
func (m *TaskMapper) FromRow(row TaskRow) (domain.Task, error) {
	participants, err := ParseParticipantsFromDB(row.Participants)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		TimeLabel:    row.TimeLabel,
		Completed:    row.Completed,
		Category:     domain.Category(row.Category),
		Priority:     domain.Priority(row.Priority),
		Recurring:    row.Recurring,
		Participants: participants,
	}, nil
}

// FromRows converts rows to domain Tasks, preserving order.
func (m *TaskMapper) FromRows(rows []*TaskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		task, err := m.FromRow(*row)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}
