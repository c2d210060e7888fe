package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

// FormMode translates keys into generic form actions; the model applies
// them to whichever form popup is open and decides what Esc and Tab mean
// in context (suggestion handling lives there).
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{types.FormCancelAction{}}, true
	case tea.KeyTab:
		return []types.Action{types.FormNextFieldAction{}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.FormPrevFieldAction{}}, true
	case tea.KeyBackspace:
		return []types.Action{types.FormBackspaceAction{}}, true
	case tea.KeyEnter:
		return []types.Action{types.FormSubmitAction{}}, true
	case tea.KeySpace:
		return []types.Action{types.FormRuneAction{Rune: ' '}}, true
	case tea.KeyRunes:
		actions := make([]types.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			actions = append(actions, types.FormRuneAction{Rune: r})
		}
		return actions, true
	}
	return nil, false
}
