package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"task-list/internal/domain"
)

// FormatParticipantsForDB encodes a participant set as "0,2,3"
func FormatParticipantsForDB(set domain.ParticipantSet) string {
	indices := set.Indices()
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, ",")
}

// ParseParticipantsFromDB decodes the output of FormatParticipantsForDB
func ParseParticipantsFromDB(s string) (domain.ParticipantSet, error) {
	if strings.TrimSpace(s) == "" {
		return domain.NewParticipantSet(), nil
	}
	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return domain.ParticipantSet{}, fmt.Errorf("invalid participant index %q: %w", part, err)
		}
		indices = append(indices, index)
	}
	return domain.NewParticipantSet(indices...), nil
}
