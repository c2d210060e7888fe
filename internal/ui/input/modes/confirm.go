package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

// ConfirmMode is a yes/no prompt; what is being confirmed lives in the
// model.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.ConfirmNoAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyEnter:
		return []types.Action{
			types.ConfirmYesAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	switch msg.String() {
	case "y", "Y":
		return []types.Action{
			types.ConfirmYesAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N":
		return []types.Action{
			types.ConfirmNoAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
