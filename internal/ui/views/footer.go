package views

import (
	"strings"

	"songbinder/internal/ui/input/types"
)

// StatusKind is the severity of the footer status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// RenderFooter draws the status line plus the key hints for the active
// screen.
func RenderFooter(status string, kind StatusKind, screen types.Screen, searching bool, styles *Styles) string {
	var parts []string
	if status != "" {
		if kind == StatusError {
			parts = append(parts, styles.StatusError.Render(status))
		} else {
			parts = append(parts, styles.StatusInfo.Render(status))
		}
	}
	parts = append(parts, styles.Help.Render(hints(screen, searching)))
	return strings.Join(parts, "\n")
}

func hints(screen types.Screen, searching bool) string {
	if searching {
		return "type to filter • ↑/↓ move • Enter open link • Ctrl+L no-link • Ctrl+E edit • Esc close"
	}
	switch screen {
	case types.ScreenGrid:
		return "←↑↓→ move • Enter open • + add • e edit • - delete • s songs • p print • ? help • q quit"
	case types.ScreenBinderSongs:
		return "↑/↓ move • Enter link • f search • l no-link • +/- add/remove • e edit • Tab next binder • Esc back"
	case types.ScreenSongManager:
		return "↑/↓ move • Enter link • f search • l no-link • + add • e edit • - delete • Esc back"
	case types.ScreenPrintReport:
		return "↑/↓ move • Space mark • Tab view • Esc back"
	}
	return ""
}
