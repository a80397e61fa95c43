package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

const taskColumns = `seq, id, title, description, time_label, completed, category, priority, recurring, participants`

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	err := scanner.Scan(
		&row.Seq,
		&row.ID,
		&row.Title,
		&row.Description,
		&row.TimeLabel,
		&row.Completed,
		&row.Category,
		&row.Priority,
		&row.Recurring,
		&row.Participants,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*TaskRow, error) {
	var tasks []*TaskRow
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
