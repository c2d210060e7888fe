package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "songbinder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Seed(5))
	binders, err := s.Binders()
	require.NoError(t, err)
	require.Len(t, binders, 5)
	assert.Equal(t, int64(1), binders[0].Number)
	assert.Equal(t, "Binder 01", binders[0].Label)
	assert.Equal(t, int64(5), binders[4].Number)

	// Second seed must not add more binders.
	require.NoError(t, s.Seed(5))
	binders, err = s.Binders()
	require.NoError(t, err)
	assert.Len(t, binders, 5)
}

func TestBindersSortedByNumber(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateBinder(3, "Third")
	require.NoError(t, err)
	_, err = s.CreateBinder(1, "First")
	require.NoError(t, err)
	_, err = s.CreateBinder(2, "Second")
	require.NoError(t, err)

	binders, err := s.Binders()
	require.NoError(t, err)
	require.Len(t, binders, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{binders[0].Number, binders[1].Number, binders[2].Number})
}

func TestCreateBinderDuplicateNumber(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateBinder(7, "Seven")
	require.NoError(t, err)
	_, err = s.CreateBinder(7, "Also seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateAndDeleteBinder(t *testing.T) {
	s := openTestStore(t)

	b, err := s.CreateBinder(1, "Old")
	require.NoError(t, err)

	require.NoError(t, s.UpdateBinder(b.ID, 2, "New"))
	binders, err := s.Binders()
	require.NoError(t, err)
	require.Len(t, binders, 1)
	assert.Equal(t, int64(2), binders[0].Number)
	assert.Equal(t, "New", binders[0].Label)

	require.NoError(t, s.DeleteBinder(b.ID))
	binders, err = s.Binders()
	require.NoError(t, err)
	assert.Empty(t, binders)

	assert.ErrorIs(t, s.UpdateBinder(b.ID, 3, "Gone"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteBinder(b.ID), ErrNotFound)
}

func TestSongOrderingCaseInsensitive(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateSong("banana", "Zed", "")
	require.NoError(t, err)
	_, err = s.CreateSong("Apple", "Young", "")
	require.NoError(t, err)
	_, err = s.CreateSong("cherry", "Xavier", "")
	require.NoError(t, err)

	songs, err := s.AllSongs()
	require.NoError(t, err)
	require.Len(t, songs, 3)
	assert.Equal(t, "Apple", songs[0].Title)
	assert.Equal(t, "banana", songs[1].Title)
	assert.Equal(t, "cherry", songs[2].Title)
}

func TestBinderSongLinking(t *testing.T) {
	s := openTestStore(t)

	b, err := s.CreateBinder(1, "One")
	require.NoError(t, err)
	song, err := s.CreateSong("Autumn Leaves", "Kosma", "https://example.com/al")
	require.NoError(t, err)
	other, err := s.CreateSong("Blue Bossa", "Dorham", "")
	require.NoError(t, err)

	require.NoError(t, s.AddSongToBinder(b.ID, song.ID))
	// Idempotent re-add.
	require.NoError(t, s.AddSongToBinder(b.ID, song.ID))

	inBinder, err := s.SongsForBinder(b.ID)
	require.NoError(t, err)
	require.Len(t, inBinder, 1)
	assert.Equal(t, song.ID, inBinder[0].ID)

	avail, err := s.AvailableSongs(b.ID)
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, other.ID, avail[0].ID)

	require.NoError(t, s.RemoveSongFromBinder(b.ID, song.ID))
	assert.ErrorIs(t, s.RemoveSongFromBinder(b.ID, song.ID), ErrNotFound)

	inBinder, err = s.SongsForBinder(b.ID)
	require.NoError(t, err)
	assert.Empty(t, inBinder)
}

func TestDeleteBinderCascades(t *testing.T) {
	s := openTestStore(t)

	b, err := s.CreateBinder(1, "One")
	require.NoError(t, err)
	song, err := s.CreateSong("Song", "", "")
	require.NoError(t, err)
	require.NoError(t, s.AddSongToBinder(b.ID, song.ID))

	require.NoError(t, s.DeleteBinder(b.ID))

	// The catalog entry survives the binder; only the link goes away.
	songs, err := s.AllSongs()
	require.NoError(t, err)
	assert.Len(t, songs, 1)
}

func TestDeleteSongCascades(t *testing.T) {
	s := openTestStore(t)

	b, err := s.CreateBinder(1, "One")
	require.NoError(t, err)
	song, err := s.CreateSong("Song", "", "")
	require.NoError(t, err)
	require.NoError(t, s.AddSongToBinder(b.ID, song.ID))

	require.NoError(t, s.DeleteSong(song.ID))

	inBinder, err := s.SongsForBinder(b.ID)
	require.NoError(t, err)
	assert.Empty(t, inBinder)
}

func TestUpdateSongStaleReference(t *testing.T) {
	s := openTestStore(t)

	song, err := s.CreateSong("Song", "", "")
	require.NoError(t, err)
	require.NoError(t, s.DeleteSong(song.ID))

	assert.ErrorIs(t, s.UpdateSong(song.ID, "X", "", ""), ErrNotFound)
	assert.ErrorIs(t, s.DeleteSong(song.ID), ErrNotFound)
}

func TestComposers(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateSong("A", "Monk", "")
	require.NoError(t, err)
	_, err = s.CreateSong("B", "Monk", "")
	require.NoError(t, err)
	_, err = s.CreateSong("C", "ellington", "")
	require.NoError(t, err)
	_, err = s.CreateSong("D", "  ", "")
	require.NoError(t, err)

	names, err := s.Composers()
	require.NoError(t, err)
	assert.Equal(t, []string{"ellington", "Monk"}, names)
}

func TestDirectorSongIDs(t *testing.T) {
	s := openTestStore(t)

	director, err := s.CreateBinder(0, "Director")
	require.NoError(t, err)
	song, err := s.CreateSong("Song", "", "")
	require.NoError(t, err)
	require.NoError(t, s.AddSongToBinder(director.ID, song.ID))

	ids, err := s.DirectorSongIDs()
	require.NoError(t, err)
	assert.True(t, ids[song.ID])
	assert.Len(t, ids, 1)
}

func TestDirectorSongIDsWithoutDirector(t *testing.T) {
	s := openTestStore(t)

	ids, err := s.DirectorSongIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
