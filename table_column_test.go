package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gui "github.com/go-theft-auto/tablegui"
)

func TestEffectiveWidth(t *testing.T) {
	tests := []struct {
		name               string
		width, offset, min float32
		want               float32
	}{
		{"no offset", 100, 0, 4, 100},
		{"grow", 100, 30, 4, 130},
		{"shrink", 100, -30, 4, 70},
		{"clamped", 100, -500, 4, 4},
		{"zero width", 0, 0, 4, 4},
		{"negative width", -20, 0, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gui.EffectiveWidth(tt.width, tt.offset, tt.min))
		})
	}
}

func TestEffectiveWidthIsMonotonicInDelta(t *testing.T) {
	for _, width := range []float32{0, 4, 60, 400} {
		prev := gui.EffectiveWidth(width, -1000, 4)
		for delta := float32(-1000); delta <= 1000; delta += 7 {
			got := gui.EffectiveWidth(width, delta, 4)
			assert.GreaterOrEqual(t, got, prev, "width %v delta %v", width, delta)
			assert.Equal(t, max(width+delta, 4), got)
			prev = got
		}
	}
}

func TestFillerWidth(t *testing.T) {
	assert.Zero(t, gui.FillerWidth(demoWidths, 0))
	assert.Zero(t, gui.FillerWidth(demoWidths, 815))
	assert.Equal(t, float32(185), gui.FillerWidth(demoWidths, 1000))
	assert.Equal(t, float32(50), gui.FillerWidth(nil, 50))
}

func TestResizedDeltaIsRelativeToCommittedWidth(t *testing.T) {
	// Successive pointer positions replace, never add up.
	assert.Equal(t, float32(10), gui.ResizedDelta(100, 10, 4))
	assert.Equal(t, float32(30), gui.ResizedDelta(100, 30, 4))
	assert.Equal(t, float32(-96), gui.ResizedDelta(100, -500, 4))
	assert.Equal(t, float32(4), gui.EffectiveWidth(100, gui.ResizedDelta(100, -500, 4), 4))
}

func TestColumnSize(t *testing.T) {
	s := gui.NewColumnSize(100)
	_, ok := s.ResizeOffset()
	assert.False(t, ok)

	s.SetResizeOffset(10)
	s.SetResizeOffset(30)
	off, ok := s.ResizeOffset()
	assert.True(t, ok)
	assert.Equal(t, float32(30), off)
	assert.Equal(t, float32(100), s.Width())

	s.Commit()
	assert.Equal(t, float32(130), s.Width())
	_, ok = s.ResizeOffset()
	assert.False(t, ok)

	s.Commit()
	assert.Equal(t, float32(130), s.Width(), "commit without an offset is a no-op")

	s.SetResizeOffset(-50)
	s.Cancel()
	assert.Equal(t, float32(130), s.Width())
	_, ok = s.ResizeOffset()
	assert.False(t, ok)
}
