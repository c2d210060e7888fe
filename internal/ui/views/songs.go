package views

import (
	"fmt"
	"strings"

	"songbinder/internal/ui/state"
)

// RenderSongList draws a song list screen: optional search bar, windowed
// rows around the cursor, and markers for the active filters.
func RenderSongList(s *state.SongListState, styles *Styles, height int) string {
	var b strings.Builder

	if s.Search.Active || strings.TrimSpace(s.Search.Query) != "" {
		b.WriteString(styles.SearchBar.Render(fmt.Sprintf("Search: %s▌", s.Search.Query)))
		b.WriteString("\n")
	}
	if s.Search.NoLinkOnly {
		b.WriteString(styles.FilterTag.Render("[no-link only]"))
		b.WriteString("\n")
	}

	if len(s.Visible) == 0 {
		if len(s.Songs) == 0 {
			b.WriteString(styles.Dim.Render("No songs here yet. Press + to add one."))
		} else {
			b.WriteString(styles.Dim.Render("No songs match."))
		}
		return b.String()
	}

	start, end := window(s.Selected, len(s.Visible), height)
	if start > 0 {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		song := s.Visible[i]
		pointer := "  "
		if i == s.Selected {
			pointer = "▶ "
		}
		link := " "
		if song.HasLink() {
			link = "⎘"
		}
		line := fmt.Sprintf("%s%s %s", pointer, link, song.DisplayTitle())
		if i == s.Selected {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(s.Visible) {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  ↓ %d more", len(s.Visible)-end)))
		b.WriteString("\n")
	}

	b.WriteString(styles.Dim.Render(fmt.Sprintf("%d/%d songs", len(s.Visible), len(s.Songs))))
	return b.String()
}

// window returns the [start, end) slice of rows that keeps the cursor in
// view for the given height.
func window(selected, length, height int) (int, int) {
	if height <= 0 || length <= height {
		return 0, length
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > length {
		end = length
		start = end - height
	}
	return start, end
}
