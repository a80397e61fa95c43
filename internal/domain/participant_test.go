package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirectory(t *testing.T) {
	dir := DefaultDirectory()

	require.Equal(t, 4, dir.Len())
	for i, p := range dir.All() {
		assert.Equal(t, i, p.Index)
		assert.NotEmpty(t, p.AvatarRef)
	}
	assert.Equal(t, 0, dir.Default())
}

func TestDirectory_Get(t *testing.T) {
	dir := NewDirectory("a.png", "b.png")

	p, ok := dir.Get(1)
	assert.True(t, ok)
	assert.Equal(t, Participant{Index: 1, AvatarRef: "b.png"}, p)

	_, ok = dir.Get(2)
	assert.False(t, ok)
	_, ok = dir.Get(-1)
	assert.False(t, ok)
}

func TestDirectory_AllIsCopy(t *testing.T) {
	dir := NewDirectory("a.png")

	all := dir.All()
	all[0].AvatarRef = "changed"

	p, _ := dir.Get(0)
	assert.Equal(t, "a.png", p.AvatarRef)
}

func TestNewParticipantSet_CollapsesDuplicates(t *testing.T) {
	set := NewParticipantSet(3, 1, 3, 1, 0)

	assert.Equal(t, []int{0, 1, 3}, set.Indices())
	assert.Equal(t, 3, set.Len())
}

func TestParticipantSet_Toggle(t *testing.T) {
	set := NewParticipantSet(0)

	set = set.Toggle(0)
	assert.Equal(t, []int{}, set.Indices())

	set = set.Toggle(2)
	assert.Equal(t, []int{2}, set.Indices())

	set = set.Toggle(1)
	assert.Equal(t, []int{1, 2}, set.Indices())
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(0))
}

func TestParticipantSet_ToggleDoesNotMutateReceiver(t *testing.T) {
	original := NewParticipantSet(0, 1)

	_ = original.Toggle(1)
	_ = original.Toggle(3)

	assert.Equal(t, []int{0, 1}, original.Indices())
}

func TestParticipantSet_Equal(t *testing.T) {
	assert.True(t, NewParticipantSet(1, 2).Equal(NewParticipantSet(2, 1, 2)))
	assert.False(t, NewParticipantSet(1).Equal(NewParticipantSet(1, 2)))
	assert.True(t, ParticipantSet{}.Equal(NewParticipantSet()))
}

func TestParticipantSet_JSON(t *testing.T) {
	data, err := json.Marshal(NewParticipantSet(2, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `[0,2]`, string(data))

	var decoded ParticipantSet
	require.NoError(t, json.Unmarshal([]byte(`[3,3,1]`), &decoded))
	assert.Equal(t, []int{1, 3}, decoded.Indices())
}
