// Package sqlite provides a task repository on an in-memory SQLite
// database. The database lives on a single connection and disappears when
// the repository is closed or the process exits.
package sqlite

import (
	"context"
	"database/sql"

	"task-list/internal/domain"
	"task-list/internal/errors"
	"task-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// memoryDSN is private to the connection that opens it, hence the pool of one.
const memoryDSN = ":memory:"

// SQLiteRepository implements repository.Repository
type SQLiteRepository struct {
	db     *sql.DB
	mapper *TaskMapper
}

// New opens a fresh session database and applies the schema
func New(ctx context.Context) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, mapper: NewTaskMapper()}, nil
}

// Close closes the database connection, discarding all tasks
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Insert appends a task
func (r *SQLiteRepository) Insert(ctx context.Context, task domain.Task) error {
	row := r.mapper.ToRow(task)
	query := `
	INSERT INTO tasks (id, title, description, time_label, completed, category, priority, recurring, participants)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, "insert task", query,
		row.ID, row.Title, row.Description, row.TimeLabel, row.Completed,
		row.Category, row.Priority, row.Recurring, row.Participants)
}

// Get retrieves a task by id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	row, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := r.mapper.FromRow(*row)
	if err != nil {
		return domain.Task{}, HandleDatabaseError("decode task", err)
	}
	return task, nil
}

// Update replaces the stored fields of an existing task
func (r *SQLiteRepository) Update(ctx context.Context, task domain.Task) error {
	row := r.mapper.ToRow(task)
	query := `
	UPDATE tasks
	SET title = ?, description = ?, time_label = ?, completed = ?, category = ?, priority = ?, recurring = ?, participants = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", row.ID,
		row.Title, row.Description, row.TimeLabel, row.Completed,
		row.Category, row.Priority, row.Recurring, row.Participants, row.ID)
}

// List retrieves all tasks in insertion order
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC`

	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	tasks, err := r.mapper.FromRows(rows)
	if err != nil {
		return nil, HandleDatabaseError("decode tasks", err)
	}
	return tasks, nil
}

// Count returns the number of stored tasks
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}
