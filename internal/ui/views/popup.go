package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"songbinder/internal/ui/state"
)

// Overlay centers a popup box in the terminal area. The popup replaces the
// screen content underneath; true transparency is not worth the cell
// arithmetic at this size.
func Overlay(popup string, width, height int, styles *Styles) string {
	box := styles.Popup.Render(popup)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// RenderBinderForm draws the binder create/edit modal.
func RenderBinderForm(f *state.BinderForm, styles *Styles) string {
	title := "New binder"
	if f.EditID != 0 {
		title = "Edit binder"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(formLine("Number", f.Number, "<required>", f.Active == state.BinderFieldNumber, styles))
	b.WriteString("\n")
	b.WriteString(formLine("Label", f.Label, "<required>", f.Active == state.BinderFieldLabel, styles))
	b.WriteString("\n\n")
	if f.Err != "" {
		b.WriteString(styles.StatusError.Render(f.Err))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("Tab switch field • Enter save • Esc cancel"))
	return b.String()
}

// RenderSongForm draws the song create/edit modal with the composer ghost
// suggestion.
func RenderSongForm(f *state.SongForm, styles *Styles) string {
	title := "New song"
	if f.EditID != 0 {
		title = "Edit song"
	}

	composer := formLine("Composer", f.Composer, "<optional>", f.Active == state.SongFieldComposer, styles)
	if suffix := f.SuggestionSuffix(); suffix != "" && f.Active == state.SongFieldComposer {
		composer += styles.Ghost.Render(suffix)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(formLine("Title", f.Title, "<required>", f.Active == state.SongFieldTitle, styles))
	b.WriteString("\n")
	b.WriteString(composer)
	b.WriteString("\n")
	b.WriteString(formLine("Link", f.Link, "<optional>", f.Active == state.SongFieldLink, styles))
	b.WriteString("\n\n")
	if f.Err != "" {
		b.WriteString(styles.StatusError.Render(f.Err))
		b.WriteString("\n")
	}
	hint := "Tab next field • Enter save • Esc cancel"
	if f.SuggestionSuffix() != "" {
		hint = "Tab accept suggestion • Enter save • Esc dismiss"
	}
	b.WriteString(styles.Help.Render(hint))
	return b.String()
}

func formLine(name, value, placeholder string, active bool, styles *Styles) string {
	display := value
	style := styles.Dim
	switch {
	case active:
		style = styles.FieldActive
		if display == "" {
			display = placeholder
		}
	case value == "":
		display = placeholder
	default:
		style = lipgloss.NewStyle()
	}
	return fmt.Sprintf("%s: %s", name, style.Render(display))
}

// RenderConfirm draws a yes/no prompt.
func RenderConfirm(question string, styles *Styles) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("y/Enter confirm • n/Esc cancel"))
	return b.String()
}

// RenderPicker draws the add-song palette.
func RenderPicker(p *state.SongPickerState, styles *Styles, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Add songs"))
	b.WriteString("\n")

	start, end := window(p.Selected, p.Len(), height)
	for i := start; i < end; i++ {
		pointer := "  "
		if i == p.Selected {
			pointer = "▶ "
		}
		var text string
		if i == 0 {
			text = "+ Create a new song"
		} else {
			checkbox := "[ ]"
			if p.IsChecked(i) {
				checkbox = "[x]"
			}
			text = fmt.Sprintf("%s %s", checkbox, p.Songs[i-1].DisplayTitle())
		}
		line := pointer + text
		if i == p.Selected {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Space check • Enter apply • Esc cancel"))
	return b.String()
}

// RenderChoice draws a horizontal button dialog.
func RenderChoice(question string, labels []string, selected int, styles *Styles) string {
	var buttons []string
	for i, label := range labels {
		text := fmt.Sprintf("[ %s ]", label)
		if i == selected {
			text = styles.Selected.Render(text)
		} else {
			text = styles.Dim.Render(text)
		}
		buttons = append(buttons, text)
	}

	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(buttons, "  "))
	return b.String()
}
