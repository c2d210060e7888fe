package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// renderHelpContent builds the key reference shown in the pager.
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Songbinder Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Binder Grid"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←↑↓→, hjkl"), descStyle.Render("Move between binders")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Enter"), descStyle.Render("Open the selected binder")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("+"), descStyle.Render("Add a binder")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("e"), descStyle.Render("Edit the selected binder")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("-"), descStyle.Render("Delete the selected binder")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("s"), descStyle.Render("Open the song manager")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("p"), descStyle.Render("Open the print report")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Song Lists"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move the cursor")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Move by 5")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Home/End"), descStyle.Render("Jump to first/last")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Enter"), descStyle.Render("Open the song link")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("f"), descStyle.Render("Search by title or composer")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("l"), descStyle.Render("Toggle no-link filter")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("+"), descStyle.Render("Add a song")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("e"), descStyle.Render("Edit the selected song")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("-"), descStyle.Render("Remove or delete the selected song")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Tab/S-Tab"), descStyle.Render("Next/previous binder (binder view)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("While Searching"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Ctrl+L"), descStyle.Render("Toggle no-link filter")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Ctrl+E"), descStyle.Render("Edit the selected song, keep the search")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Esc"), descStyle.Render("Close search, clear the query")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Print Report"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Tab"), descStyle.Render("Switch by-binder/by-song view")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Space"), descStyle.Render("Mark a song as added")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Esc"), descStyle.Render("Leave, offering to apply marks")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("?"), descStyle.Render("This help")))
	help.WriteString(fmt.Sprintf("  %s           %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
