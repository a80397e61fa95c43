package domain

import (
	"encoding/json"
	"sort"
)

// Participant is an invitable person. AvatarRef is opaque to the core.
type Participant struct {
	Index     int
	AvatarRef string
}

// Directory is the fixed, ordered catalogue of invitable participants.
type Directory struct {
	participants []Participant
}

// NewDirectory builds a directory whose indices follow the argument order.
func NewDirectory(avatarRefs ...string) *Directory {
	participants := make([]Participant, len(avatarRefs))
	for i, ref := range avatarRefs {
		participants[i] = Participant{Index: i, AvatarRef: ref}
	}
	return &Directory{participants: participants}
}

// DefaultDirectory returns the stock four-person directory.
func DefaultDirectory() *Directory {
	return NewDirectory(
		"https://randomuser.me/api/portraits/men/32.jpg",
		"https://randomuser.me/api/portraits/women/44.jpg",
		"https://randomuser.me/api/portraits/men/65.jpg",
		"https://randomuser.me/api/portraits/women/12.jpg",
	)
}

// All returns a copy of the participants in directory order.
func (d *Directory) All() []Participant {
	out := make([]Participant, len(d.participants))
	copy(out, d.participants)
	return out
}

// Get returns the participant at index.
func (d *Directory) Get(index int) (Participant, bool) {
	if !d.Contains(index) {
		return Participant{}, false
	}
	return d.participants[index], true
}

// Contains reports whether index names a participant.
func (d *Directory) Contains(index int) bool {
	return index >= 0 && index < len(d.participants)
}

// Len returns the number of participants.
func (d *Directory) Len() int {
	return len(d.participants)
}

// Default returns the index pre-selected for new drafts.
func (d *Directory) Default() int {
	return 0
}

// ParticipantSet is an immutable set of participant indices. Operations
// return a new set; indices are kept ascending so they render in directory
// order.
type ParticipantSet struct {
	indices []int
}

// NewParticipantSet builds a set, collapsing duplicates.
func NewParticipantSet(indices ...int) ParticipantSet {
	seen := make(map[int]struct{}, len(indices))
	unique := make([]int, 0, len(indices))
	for _, index := range indices {
		if _, ok := seen[index]; ok {
			continue
		}
		seen[index] = struct{}{}
		unique = append(unique, index)
	}
	sort.Ints(unique)
	return ParticipantSet{indices: unique}
}

// Contains reports membership.
func (s ParticipantSet) Contains(index int) bool {
	i := sort.SearchInts(s.indices, index)
	return i < len(s.indices) && s.indices[i] == index
}

// Toggle adds index if absent and removes it if present.
func (s ParticipantSet) Toggle(index int) ParticipantSet {
	if !s.Contains(index) {
		return NewParticipantSet(append(s.Indices(), index)...)
	}
	out := make([]int, 0, len(s.indices))
	for _, existing := range s.indices {
		if existing != index {
			out = append(out, existing)
		}
	}
	return ParticipantSet{indices: out}
}

// Indices returns the members in ascending order as a fresh slice.
func (s ParticipantSet) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Len returns the number of members.
func (s ParticipantSet) Len() int {
	return len(s.indices)
}

// Clone returns a set that shares no memory with s.
func (s ParticipantSet) Clone() ParticipantSet {
	return ParticipantSet{indices: s.Indices()}
}

// Equal reports whether both sets hold the same members.
func (s ParticipantSet) Equal(other ParticipantSet) bool {
	if len(s.indices) != len(other.indices) {
		return false
	}
	for i := range s.indices {
		if s.indices[i] != other.indices[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as an array of indices.
func (s ParticipantSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Indices())
}

// UnmarshalJSON decodes an array of indices.
func (s *ParticipantSet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	*s = NewParticipantSet(indices...)
	return nil
}

// MarshalYAML encodes the set as a sequence of indices.
func (s ParticipantSet) MarshalYAML() (interface{}, error) {
	return s.Indices(), nil
}
