package views

import (
	"fmt"
	"strings"

	"songbinder/internal/ui/state"
)

// RenderReport draws the print report in its active projection.
func RenderReport(r *state.PrintReportState, styles *Styles, height int) string {
	if !r.DirectorExists {
		return styles.StatusError.Render("No director binder found. Create a binder with number 0 first.")
	}

	var b strings.Builder
	mode := "by binder"
	if r.Mode == state.ReportBySong {
		mode = "by song"
	}
	b.WriteString(styles.FilterTag.Render(fmt.Sprintf("[%s] Tab switches view", mode)))
	b.WriteString("\n")
	if r.HasPending() {
		b.WriteString(styles.StatusInfo.Render(fmt.Sprintf("%d pending change(s), applied when you leave", r.Pending)))
		b.WriteString("\n")
	}

	rows := r.Rows()
	start, end := window(r.Selected, len(rows), height)
	if start > 0 {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		row := rows[i]
		pointer := "  "
		if i == r.Selected {
			pointer = "▶ "
		}
		text := row.Text
		if row.Kind == state.RowSong && r.Mode == state.ReportByBinder {
			text = "  " + text
		}
		line := pointer + text
		switch {
		case i == r.Selected:
			line = styles.Selected.Render(line)
		case row.Kind == state.RowHeader:
			line = styles.Highlight.Render(line)
		case row.Kind == state.RowPlaceholder:
			line = styles.Dim.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(rows) {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  ↓ %d more", len(rows)-end)))
		b.WriteString("\n")
	}
	return b.String()
}
