package domain

import (
	"fmt"
	"strings"

	"task-list/internal/errors"
)

// Options is a fixed enumeration with a named default. Values keep their
// declaration order, which is also their display order.
type Options[T ~string] struct {
	Name    string
	Values  []T
	Default T
}

// Contains reports whether v is one of the recognised values.
func (o Options[T]) Contains(v T) bool {
	for _, value := range o.Values {
		if value == v {
			return true
		}
	}
	return false
}

// Parse resolves s case-insensitively. An empty string yields the default.
func (o Options[T]) Parse(s string) (T, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return o.Default, nil
	}
	for _, value := range o.Values {
		if strings.EqualFold(string(value), trimmed) {
			return value, nil
		}
	}
	var zero T
	reason := fmt.Sprintf("must be one of %s", strings.Join(o.Strings(), ", "))
	return zero, errors.NewInvalidInputError(o.Name, s, reason)
}

// Next returns the value following v, wrapping around. Unknown values
// restart from the first entry.
func (o Options[T]) Next(v T) T {
	for i, value := range o.Values {
		if value == v {
			return o.Values[(i+1)%len(o.Values)]
		}
	}
	return o.Values[0]
}

// Strings returns the values as plain strings.
func (o Options[T]) Strings() []string {
	out := make([]string, len(o.Values))
	for i, value := range o.Values {
		out[i] = string(value)
	}
	return out
}
