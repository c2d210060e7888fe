package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

// SearchMode is the live filter bar on the song list screens. Unhandled
// keys fall through to the shared text input; navigation keys keep working
// against the filtered list underneath.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		// One layer at a time: close the bar, clear the query, keep the
		// link toggle.
		return []types.Action{
			types.CloseSearchAction{},
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
	case tea.KeyEnter:
		// Opening a link does not leave the search.
		return []types.Action{types.OpenLinkAction{}}, true
	case tea.KeyCtrlL:
		return []types.Action{types.ToggleNoLinkAction{}}, true
	case tea.KeyCtrlE:
		return []types.Action{types.EditFromSearchAction{}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
