package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	Selected    lipgloss.Style
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	Popup       lipgloss.Style
	FieldActive lipgloss.Style
	Ghost       lipgloss.Style
	SearchBar   lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	FilterTag   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(1, 2),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("226")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		FieldActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Ghost:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		FilterTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
}
