package services

import (
	"strconv"
	"sync/atomic"
)

// counterIDs issues "1", "2", ... in order.
type counterIDs struct {
	last atomic.Uint64
}

// NewCounterIDs returns a generator whose first id is "1".
func NewCounterIDs() IDGenerator {
	return &counterIDs{}
}

func (c *counterIDs) Next() string {
	return strconv.FormatUint(c.last.Add(1), 10)
}
