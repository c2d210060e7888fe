package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbinder/internal/domain"
)

func sampleReport() *PrintReportState {
	directorSongs := []domain.Song{
		{ID: 1, Title: "Autumn Leaves", Composer: "Kosma"},
		{ID: 2, Title: "Blue Bossa", Composer: "Dorham"},
	}
	others := []BinderContents{
		{Binder: domain.Binder{ID: 10, Number: 1, Label: "First"}, SongIDs: map[int64]bool{1: true}},
		{Binder: domain.Binder{ID: 11, Number: 2, Label: "Second"}, SongIDs: map[int64]bool{}},
		{Binder: domain.Binder{ID: 12, Number: 3, Label: "Complete"}, SongIDs: map[int64]bool{1: true, 2: true}},
	}
	return NewPrintReport(directorSongs, others)
}

func TestReportSkipsCompleteBinders(t *testing.T) {
	r := sampleReport()

	require.Len(t, r.BinderReports, 2)
	assert.Equal(t, int64(10), r.BinderReports[0].BinderID)
	require.Len(t, r.BinderReports[0].Songs, 1)
	assert.Equal(t, int64(2), r.BinderReports[0].Songs[0].Song.ID)
	require.Len(t, r.BinderReports[1].Songs, 2)
}

func TestReportSongTotals(t *testing.T) {
	r := sampleReport()

	// Blue Bossa is missing from two binders, Autumn Leaves from one.
	byID := make(map[int64]int)
	for _, entry := range r.SongTotals {
		byID[entry.Song.ID] = entry.Needed
	}
	assert.Equal(t, 1, byID[1])
	assert.Equal(t, 2, byID[2])
}

func TestReportRowsLayout(t *testing.T) {
	r := sampleReport()

	rows := r.Rows()
	// Header, song, header, song, song.
	require.Len(t, rows, 5)
	assert.Equal(t, RowHeader, rows[0].Kind)
	assert.Contains(t, rows[0].Text, "Binder 01")
	assert.Equal(t, RowSong, rows[1].Kind)
	assert.Contains(t, rows[1].Text, "[ ]")
}

func TestToggleCurrentTracksPending(t *testing.T) {
	r := sampleReport()

	// Header row is inert.
	r.First()
	assert.False(t, r.ToggleCurrent())
	assert.False(t, r.HasPending())

	r.Move(1)
	assert.True(t, r.ToggleCurrent())
	assert.True(t, r.HasPending())
	assert.Contains(t, r.Rows()[1].Text, "[x]")

	pending := r.PendingAssignments()
	require.Len(t, pending, 1)
	assert.Equal(t, Assignment{BinderID: 10, SongID: 2}, pending[0])

	// Unticking restores the tally.
	assert.True(t, r.ToggleCurrent())
	assert.False(t, r.HasPending())
	assert.Empty(t, r.PendingAssignments())
}

func TestToggleAdjustsSongTally(t *testing.T) {
	r := sampleReport()

	r.Move(1)
	require.True(t, r.ToggleCurrent())

	r.ToggleMode()
	assert.Equal(t, ReportBySong, r.Mode)
	// Blue Bossa dropped from 2 to 1 needed.
	found := false
	for _, entry := range r.SongTotals {
		if entry.Song.ID == 2 {
			assert.Equal(t, 1, entry.Needed)
			found = true
		}
	}
	assert.True(t, found)
}

func TestBySongRowsSortedAndFiltered(t *testing.T) {
	r := sampleReport()
	r.ToggleMode()

	rows := r.Rows()
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0].Text, "Autumn Leaves")
	assert.Contains(t, rows[1].Text, "Blue Bossa")
	assert.Contains(t, rows[1].Text, "needed in 2 binders")

	song, ok := r.CurrentSong()
	require.True(t, ok)
	assert.Equal(t, int64(1), song.ID)
}

func TestMissingDirectorReportIsInert(t *testing.T) {
	r := NewMissingDirectorReport()

	assert.False(t, r.DirectorExists)
	assert.Nil(t, r.Rows())
	assert.False(t, r.ToggleCurrent())
	r.ToggleMode()
	assert.Equal(t, ReportByBinder, r.Mode)
}

func TestEmptyReportShowsPlaceholder(t *testing.T) {
	r := NewPrintReport(nil, []BinderContents{
		{Binder: domain.Binder{ID: 10, Number: 1}, SongIDs: map[int64]bool{}},
	})

	rows := r.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, RowPlaceholder, rows[0].Kind)
	assert.False(t, r.ToggleCurrent())
}
