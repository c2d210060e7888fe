package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Screen transition actions

type OpenBinderAction struct{}

func (a OpenBinderAction) Type() string { return "open_binder" }

type OpenSongManagerAction struct{}

func (a OpenSongManagerAction) Type() string { return "open_song_manager" }

type OpenPrintReportAction struct{}

func (a OpenPrintReportAction) Type() string { return "open_print_report" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type CycleBinderAction struct {
	Delta int // +1 next, -1 previous, by binder number with wraparound
}

func (a CycleBinderAction) Type() string { return "cycle_binder" }

// Search actions

type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type CloseSearchAction struct{}

func (a CloseSearchAction) Type() string { return "close_search" }

type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ToggleNoLinkAction struct{}

func (a ToggleNoLinkAction) Type() string { return "toggle_no_link" }

type EditFromSearchAction struct{}

func (a EditFromSearchAction) Type() string { return "edit_from_search" }

// CRUD actions; the model interprets them against the active screen

type AddAction struct{}

func (a AddAction) Type() string { return "add" }

type RemoveAction struct{}

func (a RemoveAction) Type() string { return "remove" }

type EditAction struct{}

func (a EditAction) Type() string { return "edit" }

type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

// Confirm dialog actions

type ConfirmYesAction struct{}

func (a ConfirmYesAction) Type() string { return "confirm_yes" }

type ConfirmNoAction struct{}

func (a ConfirmNoAction) Type() string { return "confirm_no" }

// Picker actions

type PickerToggleAction struct{}

func (a PickerToggleAction) Type() string { return "picker_toggle" }

type PickerAcceptAction struct{}

func (a PickerAcceptAction) Type() string { return "picker_accept" }

type PickerCancelAction struct{}

func (a PickerCancelAction) Type() string { return "picker_cancel" }

// Form actions, applied to whichever form popup is open

type FormRuneAction struct {
	Rune rune
}

func (a FormRuneAction) Type() string { return "form_rune" }

type FormBackspaceAction struct{}

func (a FormBackspaceAction) Type() string { return "form_backspace" }

type FormNextFieldAction struct{}

func (a FormNextFieldAction) Type() string { return "form_next_field" }

type FormPrevFieldAction struct{}

func (a FormPrevFieldAction) Type() string { return "form_prev_field" }

type FormSubmitAction struct{}

func (a FormSubmitAction) Type() string { return "form_submit" }

type FormCancelAction struct{}

func (a FormCancelAction) Type() string { return "form_cancel" }

// Print report actions

type ToggleReportModeAction struct{}

func (a ToggleReportModeAction) Type() string { return "toggle_report_mode" }

type ReportToggleAction struct{}

func (a ReportToggleAction) Type() string { return "report_toggle" }

// Choice dialog actions (apply / discard / cancel)

type ChoiceMoveAction struct {
	Delta int
}

func (a ChoiceMoveAction) Type() string { return "choice_move" }

type ChoiceCommitAction struct{}

func (a ChoiceCommitAction) Type() string { return "choice_commit" }

type ChoiceCancelAction struct{}

func (a ChoiceCancelAction) Type() string { return "choice_cancel" }

// Command actions

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
