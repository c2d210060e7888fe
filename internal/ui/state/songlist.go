package state

import (
	"songbinder/internal/domain"
	"songbinder/internal/ui/logic"
)

// SearchState is the transient search session of one song list. It never
// outlives the screen that owns it.
type SearchState struct {
	Active     bool   // search bar open, keystrokes edit the query
	Query      string // raw text, may be whitespace
	NoLinkOnly bool   // show only songs without a link
}

// SongListState owns one song list screen: the loaded snapshot, the search
// session, the derived visible list and the cursor. Every mutation goes
// through apply so the visible list and cursor can never drift apart.
type SongListState struct {
	Binder   *domain.Binder // nil for the whole-catalog manager screen
	Songs    []domain.Song  // snapshot as loaded from the store
	Visible  []domain.Song  // derived: FilterSongs(Songs, Query, NoLinkOnly)
	Search   SearchState
	Selected int
}

// NewSongListState builds a list state around a fresh snapshot.
func NewSongListState(binder *domain.Binder, songs []domain.Song) *SongListState {
	s := &SongListState{Binder: binder, Songs: songs}
	s.apply()
	return s
}

// apply recomputes the visible list and re-clamps the cursor.
func (s *SongListState) apply() {
	s.Visible = logic.FilterSongs(s.Songs, s.Search.Query, s.Search.NoLinkOnly)
	s.Selected = logic.ClampIndex(s.Selected, len(s.Visible))
}

// SetSongs replaces the snapshot, keeping search settings.
func (s *SongListState) SetSongs(songs []domain.Song) {
	s.Songs = songs
	s.apply()
}

// OpenSearch activates the search bar with an empty query. The link toggle
// keeps its value.
func (s *SongListState) OpenSearch() {
	s.Search.Active = true
	s.Search.Query = ""
	s.apply()
}

// CloseSearch deactivates the bar and clears only the query.
func (s *SongListState) CloseSearch() {
	s.Search.Active = false
	s.Search.Query = ""
	s.apply()
}

// SetQuery replaces the query text while searching.
func (s *SongListState) SetQuery(query string) {
	s.Search.Query = query
	s.apply()
}

// ToggleNoLink flips the link-presence filter.
func (s *SongListState) ToggleNoLink() {
	s.Search.NoLinkOnly = !s.Search.NoLinkOnly
	s.apply()
}

// Move shifts the cursor by delta within the visible list, no wraparound.
func (s *SongListState) Move(delta int) {
	s.Selected = logic.MoveIndex(s.Selected, delta, len(s.Visible))
}

// First jumps to the top of the visible list.
func (s *SongListState) First() {
	s.Selected = 0
}

// Last jumps to the bottom of the visible list.
func (s *SongListState) Last() {
	s.Selected = logic.ClampIndex(len(s.Visible)-1, len(s.Visible))
}

// CurrentSong returns the song under the cursor, or false when the visible
// list is empty.
func (s *SongListState) CurrentSong() (domain.Song, bool) {
	if len(s.Visible) == 0 {
		return domain.Song{}, false
	}
	return s.Visible[s.Selected], true
}
