package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbinder/internal/domain"
)

func samplePicker() *SongPickerState {
	return NewSongPickerState(7, []domain.Song{
		{ID: 1, Title: "Autumn Leaves"},
		{ID: 2, Title: "Blue Bossa"},
		{ID: 3, Title: "Caravan"},
	})
}

func TestPickerCreateRowHasNoCheckbox(t *testing.T) {
	p := samplePicker()

	assert.True(t, p.OnCreateRow())
	p.ToggleCurrent()
	assert.Empty(t, p.CheckedSongs())
}

func TestPickerBulkCheck(t *testing.T) {
	p := samplePicker()

	p.Move(1)
	p.ToggleCurrent()
	p.Move(2)
	p.ToggleCurrent()

	checked := p.CheckedSongs()
	require.Len(t, checked, 2)
	assert.Equal(t, int64(1), checked[0].ID)
	assert.Equal(t, int64(3), checked[1].ID)
	assert.True(t, p.IsChecked(1))
	assert.False(t, p.IsChecked(2))

	// Toggling again unchecks.
	p.ToggleCurrent()
	assert.Len(t, p.CheckedSongs(), 1)
}

func TestPickerMovementClamped(t *testing.T) {
	p := samplePicker()

	p.Move(-1)
	assert.Equal(t, 0, p.Selected)
	p.Last()
	assert.Equal(t, 3, p.Selected)
	p.Move(5)
	assert.Equal(t, 3, p.Selected)
	p.First()
	assert.True(t, p.OnCreateRow())
}
