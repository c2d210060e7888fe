package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch ctx.Screen() {
	case types.ScreenGrid:
		return m.handleGrid(msg, ctx)
	case types.ScreenBinderSongs:
		return m.handleBinderSongs(msg, ctx)
	case types.ScreenSongManager:
		return m.handleSongManager(msg, ctx)
	case types.ScreenPrintReport:
		return m.handlePrintReport(msg, ctx)
	}
	return nil, false
}

func (m *NormalMode) handleGrid(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.QuitAction{}}, true
	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyEnter:
		if ctx.HasCurrentItem() {
			return []types.Action{types.OpenBinderAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "s", "S":
		return []types.Action{types.OpenSongManagerAction{}}, true
	case "p", "P":
		return []types.Action{types.OpenPrintReportAction{}}, true
	case "+":
		return []types.Action{types.AddAction{}}, true
	case "-":
		if ctx.HasCurrentItem() {
			return []types.Action{types.RemoveAction{}}, true
		}
		return nil, false
	case "e", "E":
		if ctx.HasCurrentItem() {
			return []types.Action{types.EditAction{}}, true
		}
		return nil, false
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handleBinderSongs(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleListKeys(msg); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.BackAction{}}, true
	case tea.KeyTab:
		return []types.Action{types.CycleBinderAction{Delta: 1}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.CycleBinderAction{Delta: -1}}, true
	}

	switch msg.String() {
	case "s", "S":
		return []types.Action{types.OpenSongManagerAction{}}, true
	case "p", "P":
		return []types.Action{types.OpenPrintReportAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handleSongManager(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleListKeys(msg); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.BackAction{}}, true
	}

	switch msg.String() {
	case "s", "S":
		return []types.Action{types.BackAction{}}, true
	case "p", "P":
		return []types.Action{types.OpenPrintReportAction{}}, true
	}
	return nil, false
}

// handleListKeys covers the keys both song list screens share.
func (m *NormalMode) handleListKeys(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.Type {
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
		return []types.Action{types.OpenLinkAction{}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "f":
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeSearch},
		}, true
	case "l", "L":
		return []types.Action{types.ToggleNoLinkAction{}}, true
	case "+":
		return []types.Action{types.AddAction{}}, true
	case "-":
		return []types.Action{types.RemoveAction{}}, true
	case "e", "E":
		return []types.Action{types.EditAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handlePrintReport(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.BackAction{}}, true
	case tea.KeyTab, tea.KeyShiftTab:
		return []types.Action{types.ToggleReportModeAction{}}, true
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
		return []types.Action{types.ReportToggleAction{}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case " ":
		return []types.Action{types.ReportToggleAction{}}, true
	case "t", "T":
		return []types.Action{types.ToggleReportModeAction{}}, true
	case "p", "P":
		return []types.Action{types.BackAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
