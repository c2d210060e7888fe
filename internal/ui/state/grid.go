package state

import (
	"songbinder/internal/domain"
	"songbinder/internal/ui/logic"
)

// GridState is the binder overview: a flat slice rendered in rows of
// Columns cells, with a single selected cell.
type GridState struct {
	Binders  []domain.Binder
	Columns  int
	Selected int
}

// NewGridState builds a grid around the loaded binders.
func NewGridState(binders []domain.Binder, columns int) *GridState {
	if columns <= 0 {
		columns = 4
	}
	return &GridState{Binders: binders, Columns: columns}
}

// SetBinders replaces the binder list. When focusID is positive the cursor
// follows that binder to its new position, otherwise it just re-clamps.
func (g *GridState) SetBinders(binders []domain.Binder, focusID int64) {
	g.Binders = binders
	if focusID > 0 {
		for i, b := range binders {
			if b.ID == focusID {
				g.Selected = i
				return
			}
		}
	}
	g.Selected = logic.ClampIndex(g.Selected, len(binders))
}

// MoveHorizontal moves one cell left (-1) or right (+1).
func (g *GridState) MoveHorizontal(delta int) {
	g.Selected = logic.GridMoveHorizontal(g.Selected, delta, len(g.Binders))
}

// MoveVertical moves one row up (-1) or down (+1).
func (g *GridState) MoveVertical(delta int) {
	g.Selected = logic.GridMoveVertical(g.Selected, delta, g.Columns, len(g.Binders))
}

// CurrentBinder returns the binder under the cursor, or false on an empty
// grid.
func (g *GridState) CurrentBinder() (domain.Binder, bool) {
	if len(g.Binders) == 0 {
		return domain.Binder{}, false
	}
	return g.Binders[g.Selected], true
}

// NextNumber returns the lowest unused binder number above the current
// maximum, for pre-filling the add form.
func (g *GridState) NextNumber() int64 {
	var max int64
	for _, b := range g.Binders {
		if b.Number > max {
			max = b.Number
		}
	}
	return max + 1
}

// Cycle returns the binder delta steps away in number order, wrapping at
// both ends. Used by Tab cycling on the songs screen.
func Cycle(binders []domain.Binder, currentID int64, delta int) (domain.Binder, bool) {
	if len(binders) == 0 {
		return domain.Binder{}, false
	}
	current := 0
	for i, b := range binders {
		if b.ID == currentID {
			current = i
			break
		}
	}
	return binders[logic.CycleIndex(current, delta, len(binders))], true
}
