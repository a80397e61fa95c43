package domain

import (
	"strconv"
	"strings"

	"task-list/internal/errors"
)

// StatusFilter selects tasks by completion state. Only FilterUndone
// constrains; the other filters are declared labels that keep everything.
type StatusFilter int

const (
	FilterUndone StatusFilter = iota
	FilterMeetings
	FilterConsummation
)

var statusFilterNames = []string{"Undone", "Meetings", "Consummation"}

// StatusFilters returns the declared filters in display order.
func StatusFilters() []StatusFilter {
	return []StatusFilter{FilterUndone, FilterMeetings, FilterConsummation}
}

// String returns the filter label.
func (f StatusFilter) String() string {
	if !f.IsDeclared() {
		return "Filter(" + strconv.Itoa(int(f)) + ")"
	}
	return statusFilterNames[f]
}

// IsDeclared reports whether f is one of the named filters.
func (f StatusFilter) IsDeclared() bool {
	return f >= 0 && int(f) < len(statusFilterNames)
}

// Keep reports whether t passes the filter.
func (f StatusFilter) Keep(t Task) bool {
	if f == FilterUndone {
		return !t.Completed
	}
	return true
}

// ParseStatusFilter accepts a filter label (case-insensitive) or its index.
func ParseStatusFilter(s string) (StatusFilter, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil {
		f := StatusFilter(n)
		if !f.IsDeclared() {
			return 0, errors.NewInvalidInputError("filter", s, "index out of range")
		}
		return f, nil
	}
	for i, name := range statusFilterNames {
		if strings.EqualFold(name, trimmed) {
			return StatusFilter(i), nil
		}
	}
	return 0, errors.NewInvalidInputError("filter", s, "must be one of "+strings.Join(statusFilterNames, ", "))
}
