package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

// PickerMode drives the add-song palette: Space checks entries in bulk,
// Enter commits or opens the create form depending on the row.
type PickerMode struct{}

func NewPickerMode() *PickerMode {
	return &PickerMode{}
}

func (m *PickerMode) Name() string {
	return "picker"
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.PickerCancelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case tea.KeySpace:
		return []types.Action{types.PickerToggleAction{}}, true
	case tea.KeyEnter:
		return []types.Action{types.PickerAcceptAction{}}, true
	}

	if msg.String() == " " {
		return []types.Action{types.PickerToggleAction{}}, true
	}
	return nil, false
}
