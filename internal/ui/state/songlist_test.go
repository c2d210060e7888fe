package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbinder/internal/domain"
)

func sampleList() *SongListState {
	return NewSongListState(nil, []domain.Song{
		{ID: 1, Title: "Autumn Leaves", Composer: "Kosma", Link: "https://x/al"},
		{ID: 2, Title: "Blue Bossa", Composer: "Dorham"},
		{ID: 3, Title: "Caravan", Composer: "Tizol", Link: "https://x/c"},
		{ID: 4, Title: "Cantaloupe Island", Composer: "Hancock"},
	})
}

func TestSearchSessionLifecycle(t *testing.T) {
	s := sampleList()

	s.OpenSearch()
	assert.True(t, s.Search.Active)
	assert.Empty(t, s.Search.Query)

	s.SetQuery("ca")
	require.Len(t, s.Visible, 2)

	s.CloseSearch()
	assert.False(t, s.Search.Active)
	assert.Empty(t, s.Search.Query)
	assert.Len(t, s.Visible, 4)
}

func TestToggleSurvivesSearchClose(t *testing.T) {
	s := sampleList()

	s.ToggleNoLink()
	s.OpenSearch()
	s.SetQuery("blue")
	require.Len(t, s.Visible, 1)

	// Esc clears the query but the link filter stays on.
	s.CloseSearch()
	assert.True(t, s.Search.NoLinkOnly)
	assert.Len(t, s.Visible, 2)
}

func TestCursorReclampsOnNarrowing(t *testing.T) {
	s := sampleList()
	s.Last()
	require.Equal(t, 3, s.Selected)

	s.OpenSearch()
	s.SetQuery("caravan")
	require.Len(t, s.Visible, 1)
	assert.Equal(t, 0, s.Selected)

	song, ok := s.CurrentSong()
	require.True(t, ok)
	assert.Equal(t, "Caravan", song.Title)
}

func TestCursorRestingPositionWhenEmpty(t *testing.T) {
	s := sampleList()
	s.Move(2)

	s.OpenSearch()
	s.SetQuery("zzz")
	assert.Empty(t, s.Visible)
	assert.Equal(t, 0, s.Selected)

	_, ok := s.CurrentSong()
	assert.False(t, ok)

	// Broadening again lands on a valid row immediately.
	s.SetQuery("ca")
	assert.Len(t, s.Visible, 2)
	assert.Equal(t, 0, s.Selected)
}

func TestMoveClampsAtEdges(t *testing.T) {
	s := sampleList()

	s.Move(-1)
	assert.Equal(t, 0, s.Selected)
	s.Move(100)
	assert.Equal(t, 3, s.Selected)
	s.First()
	assert.Equal(t, 0, s.Selected)
}

func TestSetSongsKeepsSearchSettings(t *testing.T) {
	s := sampleList()
	s.OpenSearch()
	s.SetQuery("ca")
	s.ToggleNoLink()

	s.SetSongs([]domain.Song{
		{ID: 9, Title: "Cantaloupe Island", Composer: "Hancock"},
		{ID: 10, Title: "Caravan", Composer: "Tizol", Link: "https://x/c"},
	})
	assert.Equal(t, "ca", s.Search.Query)
	assert.True(t, s.Search.NoLinkOnly)
	require.Len(t, s.Visible, 1)
	assert.Equal(t, int64(9), s.Visible[0].ID)
}
