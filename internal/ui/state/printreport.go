package state

import (
	"fmt"
	"sort"
	"strings"

	"songbinder/internal/domain"
	"songbinder/internal/ui/logic"
)

// ReportMode selects which projection of the print report is shown.
type ReportMode int

const (
	ReportByBinder ReportMode = iota
	ReportBySong
)

// MissingSong is one director song absent from a binder, with a pending
// checkbox the user can tick before leaving the screen.
type MissingSong struct {
	Song    domain.Song
	Checked bool
}

// BinderReport lists the director songs one binder still lacks.
type BinderReport struct {
	BinderID     int64
	BinderNumber int64
	BinderLabel  string
	Songs        []MissingSong
}

// SongNeeded tallies how many binders still lack one song.
type SongNeeded struct {
	Song   domain.Song
	Needed int
}

// ReportRowKind distinguishes binder headers from checkable song rows.
type ReportRowKind int

const (
	RowHeader ReportRowKind = iota
	RowSong
	RowPlaceholder
)

// ReportRow is one rendered line of the report with back-references into
// the underlying report data.
type ReportRow struct {
	Kind      ReportRowKind
	Text      string
	BinderIdx int
	SongIdx   int
}

// Assignment is one pending (binder, song) link to apply on exit.
type Assignment struct {
	BinderID int64
	SongID   int64
}

// PrintReportState compares every binder against the director's binder
// (number 0) and tracks pending additions. Checkbox state lives here until
// the user applies or discards it on the way out.
type PrintReportState struct {
	DirectorExists bool
	Mode           ReportMode
	BinderReports  []BinderReport
	SongTotals     []SongNeeded
	BinderRows     []ReportRow
	SongRows       []ReportRow
	Selected       int
	Pending        int
}

// BinderContents pairs a binder with the set of song ids it holds.
type BinderContents struct {
	Binder  domain.Binder
	SongIDs map[int64]bool
}

// NewPrintReport builds the report from the director's song list and the
// contents of every other binder.
func NewPrintReport(directorSongs []domain.Song, others []BinderContents) *PrintReportState {
	var reports []BinderReport
	var totals []SongNeeded

	for _, bc := range others {
		var missing []MissingSong
		for _, song := range directorSongs {
			if bc.SongIDs[song.ID] {
				continue
			}
			missing = append(missing, MissingSong{Song: song})

			found := false
			for i := range totals {
				if totals[i].Song.ID == song.ID {
					totals[i].Needed++
					found = true
					break
				}
			}
			if !found {
				totals = append(totals, SongNeeded{Song: song, Needed: 1})
			}
		}
		if len(missing) > 0 {
			reports = append(reports, BinderReport{
				BinderID:     bc.Binder.ID,
				BinderNumber: bc.Binder.Number,
				BinderLabel:  bc.Binder.Label,
				Songs:        missing,
			})
		}
	}

	s := &PrintReportState{
		DirectorExists: true,
		BinderReports:  reports,
		SongTotals:     totals,
	}
	s.refreshBinderRows()
	s.refreshSongRows()
	return s
}

// NewMissingDirectorReport is the empty report shown when no binder carries
// number 0.
func NewMissingDirectorReport() *PrintReportState {
	return &PrintReportState{}
}

// ToggleMode switches between the by-binder and by-song projections,
// resetting the cursor.
func (s *PrintReportState) ToggleMode() {
	if !s.DirectorExists {
		return
	}
	if s.Mode == ReportByBinder {
		s.Mode = ReportBySong
	} else {
		s.Mode = ReportByBinder
	}
	s.Selected = 0
}

// Rows returns the lines of the active projection.
func (s *PrintReportState) Rows() []ReportRow {
	if !s.DirectorExists {
		return nil
	}
	if s.Mode == ReportBySong {
		return s.SongRows
	}
	return s.BinderRows
}

// Move shifts the row cursor, clamped.
func (s *PrintReportState) Move(delta int) {
	s.Selected = logic.MoveIndex(s.Selected, delta, len(s.Rows()))
}

// First jumps to the top row.
func (s *PrintReportState) First() {
	s.Selected = 0
}

// Last jumps to the bottom row.
func (s *PrintReportState) Last() {
	s.Selected = logic.ClampIndex(len(s.Rows())-1, len(s.Rows()))
}

// ToggleCurrent flips the checkbox under the cursor in by-binder mode and
// adjusts the by-song tallies to match. Header rows are inert.
func (s *PrintReportState) ToggleCurrent() bool {
	if !s.DirectorExists || s.Mode != ReportByBinder {
		return false
	}
	if s.Selected >= len(s.BinderRows) {
		return false
	}
	row := s.BinderRows[s.Selected]
	if row.Kind != RowSong {
		return false
	}

	entry := &s.BinderReports[row.BinderIdx].Songs[row.SongIdx]
	entry.Checked = !entry.Checked
	if entry.Checked {
		s.Pending++
		s.adjustNeeded(entry.Song.ID, -1)
	} else if s.Pending > 0 {
		s.Pending--
		s.adjustNeeded(entry.Song.ID, 1)
	}
	s.refreshBinderRows()
	return true
}

// HasPending reports whether any checkbox is ticked.
func (s *PrintReportState) HasPending() bool {
	return s.Pending > 0
}

// PendingAssignments collects the ticked (binder, song) pairs for the
// apply step.
func (s *PrintReportState) PendingAssignments() []Assignment {
	var out []Assignment
	for _, report := range s.BinderReports {
		for _, missing := range report.Songs {
			if missing.Checked {
				out = append(out, Assignment{BinderID: report.BinderID, SongID: missing.Song.ID})
			}
		}
	}
	return out
}

// CurrentSong returns the song under the cursor in by-song mode.
func (s *PrintReportState) CurrentSong() (domain.Song, bool) {
	if !s.DirectorExists || s.Mode != ReportBySong {
		return domain.Song{}, false
	}
	if s.Selected >= len(s.SongRows) || s.SongRows[s.Selected].Kind != RowSong {
		return domain.Song{}, false
	}
	return s.SongTotals[s.SongRows[s.Selected].SongIdx].Song, true
}

func (s *PrintReportState) adjustNeeded(songID int64, delta int) {
	for i := range s.SongTotals {
		if s.SongTotals[i].Song.ID == songID {
			n := s.SongTotals[i].Needed + delta
			if n < 0 {
				n = 0
			}
			s.SongTotals[i].Needed = n
			break
		}
	}
	s.refreshSongRows()
}

func (s *PrintReportState) refreshBinderRows() {
	var rows []ReportRow
	for binderIdx, report := range s.BinderReports {
		rows = append(rows, ReportRow{
			Kind:      RowHeader,
			Text:      fmt.Sprintf("Binder %02d • %s", report.BinderNumber, report.BinderLabel),
			BinderIdx: binderIdx,
			SongIdx:   -1,
		})
		for songIdx, missing := range report.Songs {
			checkbox := "[ ]"
			if missing.Checked {
				checkbox = "[x]"
			}
			rows = append(rows, ReportRow{
				Kind:      RowSong,
				Text:      fmt.Sprintf("%s %s", checkbox, missing.Song.DisplayTitle()),
				BinderIdx: binderIdx,
				SongIdx:   songIdx,
			})
		}
	}
	if len(rows) == 0 {
		rows = append(rows, ReportRow{Kind: RowPlaceholder, Text: "Nothing to print.", BinderIdx: -1, SongIdx: -1})
	}
	s.BinderRows = rows
	if s.Mode == ReportByBinder {
		s.Selected = logic.ClampIndex(s.Selected, len(rows))
	}
}

func (s *PrintReportState) refreshSongRows() {
	type indexed struct {
		totalIdx int
		need     SongNeeded
	}
	var needs []indexed
	for i, entry := range s.SongTotals {
		if entry.Needed > 0 {
			needs = append(needs, indexed{totalIdx: i, need: entry})
		}
	}
	sort.SliceStable(needs, func(a, b int) bool {
		ta := strings.ToLower(needs[a].need.Song.Title)
		tb := strings.ToLower(needs[b].need.Song.Title)
		if ta != tb {
			return ta < tb
		}
		return strings.ToLower(needs[a].need.Song.Composer) < strings.ToLower(needs[b].need.Song.Composer)
	})

	var rows []ReportRow
	for _, n := range needs {
		label := "binders"
		if n.need.Needed == 1 {
			label = "binder"
		}
		rows = append(rows, ReportRow{
			Kind:      RowSong,
			Text:      fmt.Sprintf("%s • needed in %d %s", n.need.Song.DisplayTitle(), n.need.Needed, label),
			BinderIdx: -1,
			SongIdx:   n.totalIdx,
		})
	}
	if len(rows) == 0 {
		rows = append(rows, ReportRow{Kind: RowPlaceholder, Text: "No songs need printing.", BinderIdx: -1, SongIdx: -1})
	}
	s.SongRows = rows
	if s.Mode == ReportBySong {
		s.Selected = logic.ClampIndex(s.Selected, len(rows))
	}
}
