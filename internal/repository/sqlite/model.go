package sqlite

// TaskRow is the stored form of a task. Seq orders rows by insertion.
type TaskRow struct {
	Seq          int64
	ID           string
	Title        string
	Description  string
	TimeLabel    string
	Completed    bool
	Category     string
	Priority     string
	Recurring    bool
	Participants string // comma-separated participant indices
}
