package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

// ChoiceMode is a horizontal multi-button dialog, used for the apply,
// discard or cancel prompt when leaving the print report with pending
// changes.
type ChoiceMode struct{}

func NewChoiceMode() *ChoiceMode {
	return &ChoiceMode{}
}

func (m *ChoiceMode) Name() string {
	return "choice"
}

func (m *ChoiceMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ChoiceMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ChoiceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.ChoiceCancelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyLeft, tea.KeyUp, tea.KeyShiftTab:
		return []types.Action{types.ChoiceMoveAction{Delta: -1}}, true
	case tea.KeyRight, tea.KeyDown, tea.KeyTab:
		return []types.Action{types.ChoiceMoveAction{Delta: 1}}, true
	case tea.KeyEnter:
		return []types.Action{types.ChoiceCommitAction{}}, true
	}

	switch msg.String() {
	case "h":
		return []types.Action{types.ChoiceMoveAction{Delta: -1}}, true
	case "l":
		return []types.Action{types.ChoiceMoveAction{Delta: 1}}, true
	}
	return nil, false
}
