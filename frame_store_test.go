package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStoreDropsEntriesNotUsedLastFrame(t *testing.T) {
	s := NewFrameStore[int]()
	id := ID(0xF00D)

	*s.Get(id, 1) += 1
	NextFrame()
	require.NotNil(t, s.GetIfExists(id), "kept for one frame without use")
	assert.Equal(t, 2, *s.GetIfExists(id))

	NextFrame()
	assert.Nil(t, s.GetIfExists(id))
	assert.Equal(t, 0, s.Len())
}

func TestFrameStoreRange(t *testing.T) {
	s := NewFrameStore[int]()
	for i := range 5 {
		s.Set(ID(i+1), i)
	}

	sum := 0
	s.Range(func(_ ID, v *int) bool {
		sum += *v
		return true
	})
	assert.Equal(t, 10, sum)

	visited := 0
	s.Range(func(ID, *int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)

	s.Clear()
	assert.Zero(t, s.Len())
}
