package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"songbinder/internal/ui/state"
)

// Cover patterns cycled across the grid so neighboring binders look
// distinct on the shelf.
var binderArt = [][]string{
	{`/\/\/`, `\/\/\`},
	{"*+*+", "+*+*"},
	{"=--=", "--=="},
	{"<>><", "><<>"},
	{"..--", "--.."},
	{"oOo ", " OoO"},
	{"##  ", "  ##"},
	{"||--", "--||"},
	{"[]__", "__[]"},
	{"~~  ", "  ~~"},
	{"^v^v", "v^v^"},
	{"&&..", "..&&"},
	{"::''", "''::"},
	{"+-+-", "-+-+"},
	{"ooOO", "OOoo"},
	{"[]<>", "<>[]"},
	{"/--/", "--//"},
	{"=__=", "__=="},
	{"|..|", ".||."},
	{"x  x", "  xx"},
}

const cardWidth = 16

// RenderGrid draws the binder shelf as rows of bordered cover cards.
func RenderGrid(g *state.GridState, styles *Styles) string {
	if len(g.Binders) == 0 {
		return styles.Dim.Render("No binders yet. Press + to add one.")
	}

	var rows []string
	for start := 0; start < len(g.Binders); start += g.Columns {
		end := start + g.Columns
		if end > len(g.Binders) {
			end = len(g.Binders)
		}

		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(g, i, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(g *state.GridState, index int, styles *Styles) string {
	binder := g.Binders[index]
	pattern := binderArt[index%len(binderArt)]

	label := binder.Label
	if len(label) > cardWidth {
		label = label[:cardWidth-1] + "…"
	}

	lines := []string{
		fmt.Sprintf("No. %02d", binder.Number),
		padCenter(pattern[0], cardWidth),
		padCenter(pattern[1], cardWidth),
		padCenter(label, cardWidth),
	}

	style := styles.Card
	if index == g.Selected {
		style = styles.CardActive
	}
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func padCenter(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
