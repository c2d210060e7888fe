package state

import (
	"songbinder/internal/domain"
	"songbinder/internal/ui/logic"
)

// SongPickerState backs the palette for attaching songs to a binder. Row 0
// is the fixed "create a new song" entry; the rest are catalog songs not
// yet in the binder, checkable in bulk.
type SongPickerState struct {
	BinderID int64
	Songs    []domain.Song // available songs, picker rows 1..len
	Selected int
	Checked  map[int64]bool
}

// NewSongPickerState builds a picker over the available songs.
func NewSongPickerState(binderID int64, available []domain.Song) *SongPickerState {
	return &SongPickerState{
		BinderID: binderID,
		Songs:    available,
		Checked:  make(map[int64]bool),
	}
}

// Len counts all rows including the create entry.
func (p *SongPickerState) Len() int {
	return len(p.Songs) + 1
}

// Move shifts the row cursor, clamped, no wraparound.
func (p *SongPickerState) Move(delta int) {
	p.Selected = logic.MoveIndex(p.Selected, delta, p.Len())
}

// First jumps to the create entry at the top.
func (p *SongPickerState) First() {
	p.Selected = 0
}

// Last jumps to the bottom row.
func (p *SongPickerState) Last() {
	p.Selected = p.Len() - 1
}

// OnCreateRow reports whether the cursor sits on the create entry.
func (p *SongPickerState) OnCreateRow() bool {
	return p.Selected == 0
}

// CurrentSong returns the song under the cursor; false on the create row.
func (p *SongPickerState) CurrentSong() (domain.Song, bool) {
	if p.OnCreateRow() {
		return domain.Song{}, false
	}
	return p.Songs[p.Selected-1], true
}

// ToggleCurrent flips the checkbox of the song under the cursor. The create
// row has no checkbox.
func (p *SongPickerState) ToggleCurrent() {
	song, ok := p.CurrentSong()
	if !ok {
		return
	}
	if p.Checked[song.ID] {
		delete(p.Checked, song.ID)
	} else {
		p.Checked[song.ID] = true
	}
}

// IsChecked reports the checkbox state of a picker row.
func (p *SongPickerState) IsChecked(row int) bool {
	if row <= 0 || row > len(p.Songs) {
		return false
	}
	return p.Checked[p.Songs[row-1].ID]
}

// CheckedSongs returns the checked songs in list order.
func (p *SongPickerState) CheckedSongs() []domain.Song {
	var checked []domain.Song
	for _, song := range p.Songs {
		if p.Checked[song.ID] {
			checked = append(checked, song)
		}
	}
	return checked
}
