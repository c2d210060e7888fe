package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/config"
	"songbinder/internal/domain"
	"songbinder/internal/store"
	"songbinder/internal/ui/input"
	"songbinder/internal/ui/input/types"
	"songbinder/internal/ui/logic"
	"songbinder/internal/ui/state"
	"songbinder/internal/ui/views"
)

// confirmKind says what a pending yes/no prompt will do.
type confirmKind int

const (
	confirmDeleteBinder confirmKind = iota
	confirmRemoveSong
	confirmDeleteSong
)

type confirmState struct {
	kind   confirmKind
	binder domain.Binder
	song   domain.Song
}

func (c *confirmState) question() string {
	switch c.kind {
	case confirmDeleteBinder:
		return fmt.Sprintf("Delete binder %02d (%s)?", c.binder.Number, c.binder.Label)
	case confirmRemoveSong:
		return fmt.Sprintf("Remove %q from this binder?", c.song.DisplayTitle())
	default:
		return fmt.Sprintf("Delete %q from every binder?", c.song.DisplayTitle())
	}
}

// choiceState is the apply/discard/cancel dialog shown when leaving the
// print report with pending marks.
type choiceState struct {
	exitApp  bool
	selected int
}

func (c *choiceState) labels() []string {
	if c.exitApp {
		return []string{"Apply & Quit", "Discard & Quit", "Cancel"}
	}
	return []string{"Apply & Leave", "Discard & Leave", "Cancel"}
}

// Model is the top-level bubbletea model. It owns the store handle, the
// per-screen state and every popup; all mutation happens synchronously in
// Update.
type Model struct {
	store        *store.Store
	cfg          *config.Config
	styles       *views.Styles
	inputHandler *input.Handler
	program      *tea.Program
	helpOps      *HelpOps

	width  int
	height int

	screen  types.Screen
	grid    *state.GridState
	songs   *state.SongListState // binder view
	manager *state.SongListState // whole-catalog view
	report  *state.PrintReportState

	binderForm *state.BinderForm
	songForm   *state.SongForm
	// link a freshly created song into this binder, 0 for none
	songFormBinderID int64
	picker           *state.SongPickerState
	confirm          *confirmState
	choice           *choiceState
	composers        []string

	// search session to restore after a Ctrl+E edit round-trip
	savedSearch       string
	savedSearchActive bool

	status     string
	statusKind views.StatusKind

	// injectable so tests never launch a browser
	openLink func(url string) error

	quitting bool
}

// New creates the model, loading the initial binder grid from the store.
func New(st *store.Store, cfg *config.Config) (*Model, error) {
	binders, err := st.Binders()
	if err != nil {
		return nil, fmt.Errorf("failed to load binders: %w", err)
	}

	m := &Model{
		store:        st,
		cfg:          cfg,
		styles:       views.NewStyles(),
		inputHandler: input.New(),
		screen:       types.ScreenGrid,
		grid:         state.NewGridState(binders, cfg.UISettings.GridColumns),
		openLink:     openInBrowser,
	}
	return m, nil
}

// SetProgram wires the running program in for pager round-trips.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to show help: %v", msg.err), views.StatusError)
		}

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// modelContext adapts the model for the input handler.
type modelContext struct {
	m *Model
}

func (c *modelContext) Screen() types.Screen {
	return c.m.screen
}

func (c *modelContext) HasCurrentItem() bool {
	switch c.m.screen {
	case types.ScreenGrid:
		_, ok := c.m.grid.CurrentBinder()
		return ok
	case types.ScreenBinderSongs:
		if c.m.songs == nil {
			return false
		}
		_, ok := c.m.songs.CurrentSong()
		return ok
	case types.ScreenSongManager:
		if c.m.manager == nil {
			return false
		}
		_, ok := c.m.manager.CurrentSong()
		return ok
	}
	return false
}

// activeList returns the song list the current screen operates on.
func (m *Model) activeList() *state.SongListState {
	switch m.screen {
	case types.ScreenBinderSongs:
		return m.songs
	case types.ScreenSongManager:
		return m.manager
	}
	return nil
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		if a.Force {
			m.quitting = true
			return tea.Quit
		}
		if m.screen == types.ScreenPrintReport && m.report != nil && m.report.HasPending() {
			m.choice = &choiceState{exitApp: true}
			m.inputHandler.ChangeMode(types.ModeChoice)
			return nil
		}
		m.quitting = true
		return tea.Quit

	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.OpenBinderAction:
		if binder, ok := m.grid.CurrentBinder(); ok {
			m.openBinder(binder)
		}

	case types.OpenSongManagerAction:
		m.openSongManager()

	case types.OpenPrintReportAction:
		m.openPrintReport()

	case types.BackAction:
		m.goBack()

	case types.CycleBinderAction:
		m.cycleBinder(a.Delta)

	case types.OpenSearchAction:
		if list := m.activeList(); list != nil {
			list.OpenSearch()
		}

	case types.CloseSearchAction:
		if list := m.activeList(); list != nil {
			list.CloseSearch()
		}
		m.savedSearch = ""
		m.savedSearchActive = false

	case types.UpdateTextAction:
		if list := m.activeList(); list != nil {
			list.SetQuery(a.Text)
		}

	case types.ToggleNoLinkAction:
		if list := m.activeList(); list != nil {
			list.ToggleNoLink()
			if list.Search.NoLinkOnly {
				m.setStatus("Showing songs without links.", views.StatusInfo)
			} else {
				m.setStatus("Showing all songs.", views.StatusInfo)
			}
		}

	case types.EditFromSearchAction:
		m.editFromSearch()

	case types.AddAction:
		m.handleAdd()

	case types.RemoveAction:
		m.handleRemove()

	case types.EditAction:
		m.handleEdit()

	case types.OpenLinkAction:
		m.handleOpenLink()

	case types.ConfirmYesAction:
		m.executeConfirm()

	case types.ConfirmNoAction:
		m.confirm = nil

	case types.PickerToggleAction:
		if m.picker != nil {
			m.picker.ToggleCurrent()
		}

	case types.PickerAcceptAction:
		m.acceptPicker()

	case types.PickerCancelAction:
		m.picker = nil

	case types.FormRuneAction:
		m.formRune(a.Rune)

	case types.FormBackspaceAction:
		m.formBackspace()

	case types.FormNextFieldAction:
		m.formNextField()

	case types.FormPrevFieldAction:
		m.formPrevField()

	case types.FormSubmitAction:
		m.submitForm()

	case types.FormCancelAction:
		m.cancelForm()

	case types.ToggleReportModeAction:
		if m.report != nil {
			m.report.ToggleMode()
		}

	case types.ReportToggleAction:
		if m.report != nil {
			m.report.ToggleCurrent()
		}

	case types.ChoiceMoveAction:
		if m.choice != nil {
			m.choice.selected = logic.CycleIndex(m.choice.selected, a.Delta, 3)
		}

	case types.ChoiceCommitAction:
		return m.commitChoice()

	case types.ChoiceCancelAction:
		m.choice = nil

	case types.ToggleHelpAction:
		return m.fetchHelpPager()
	}

	return nil
}

func (m *Model) navigate(direction string) {
	// The picker popup captures navigation while it is open.
	if m.picker != nil {
		switch direction {
		case "up":
			m.picker.Move(-1)
		case "down":
			m.picker.Move(1)
		case "pageup":
			m.picker.Move(-logic.PageStep)
		case "pagedown":
			m.picker.Move(logic.PageStep)
		case "home":
			m.picker.First()
		case "end":
			m.picker.Last()
		}
		return
	}

	switch m.screen {
	case types.ScreenGrid:
		switch direction {
		case "left":
			m.grid.MoveHorizontal(-1)
		case "right":
			m.grid.MoveHorizontal(1)
		case "up":
			m.grid.MoveVertical(-1)
		case "down":
			m.grid.MoveVertical(1)
		}

	case types.ScreenBinderSongs, types.ScreenSongManager:
		list := m.activeList()
		if list == nil {
			return
		}
		switch direction {
		case "up":
			list.Move(-1)
		case "down":
			list.Move(1)
		case "pageup":
			list.Move(-logic.PageStep)
		case "pagedown":
			list.Move(logic.PageStep)
		case "home":
			list.First()
		case "end":
			list.Last()
		}

	case types.ScreenPrintReport:
		if m.report == nil {
			return
		}
		switch direction {
		case "up":
			m.report.Move(-1)
		case "down":
			m.report.Move(1)
		case "pageup":
			m.report.Move(-logic.PageStep)
		case "pagedown":
			m.report.Move(logic.PageStep)
		case "home":
			m.report.First()
		case "end":
			m.report.Last()
		}
	}
}

// Screen transitions. Every one reloads from the store so the view never
// shows stale rows.

func (m *Model) openBinder(binder domain.Binder) {
	songs, err := m.store.SongsForBinder(binder.ID)
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
		return
	}
	m.songs = state.NewSongListState(&binder, songs)
	m.screen = types.ScreenBinderSongs
	m.clearStatus()
}

func (m *Model) openSongManager() {
	songs, err := m.store.AllSongs()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
		return
	}
	m.reloadComposers()
	m.manager = state.NewSongListState(nil, songs)
	m.screen = types.ScreenSongManager
	m.clearStatus()
}

func (m *Model) openPrintReport() {
	binders, err := m.store.Binders()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load binders: %v", err), views.StatusError)
		return
	}

	var director *domain.Binder
	for i := range binders {
		if binders[i].Number == 0 {
			director = &binders[i]
			break
		}
	}
	if director == nil {
		m.report = state.NewMissingDirectorReport()
		m.screen = types.ScreenPrintReport
		m.clearStatus()
		return
	}

	directorSongs, err := m.store.SongsForBinder(director.ID)
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
		return
	}

	var others []state.BinderContents
	for _, binder := range binders {
		if binder.ID == director.ID {
			continue
		}
		songs, err := m.store.SongsForBinder(binder.ID)
		if err != nil {
			m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
			return
		}
		ids := make(map[int64]bool, len(songs))
		for _, song := range songs {
			ids[song.ID] = true
		}
		others = append(others, state.BinderContents{Binder: binder, SongIDs: ids})
	}

	m.report = state.NewPrintReport(directorSongs, others)
	m.screen = types.ScreenPrintReport
	m.clearStatus()
}

func (m *Model) goBack() {
	switch m.screen {
	case types.ScreenBinderSongs, types.ScreenSongManager:
		m.returnToGrid()
	case types.ScreenPrintReport:
		if m.report != nil && m.report.HasPending() {
			m.choice = &choiceState{}
			m.inputHandler.ChangeMode(types.ModeChoice)
			return
		}
		m.returnToGrid()
	}
}

func (m *Model) returnToGrid() {
	var focusID int64
	if m.screen == types.ScreenBinderSongs && m.songs != nil && m.songs.Binder != nil {
		focusID = m.songs.Binder.ID
	}
	m.reloadGrid(focusID)
	m.songs = nil
	m.manager = nil
	m.report = nil
	m.screen = types.ScreenGrid
	m.clearStatus()
}

func (m *Model) reloadGrid(focusID int64) {
	binders, err := m.store.Binders()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load binders: %v", err), views.StatusError)
		return
	}
	m.grid.SetBinders(binders, focusID)
}

func (m *Model) cycleBinder(delta int) {
	if m.screen != types.ScreenBinderSongs || m.songs == nil || m.songs.Binder == nil {
		return
	}
	binders, err := m.store.Binders()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load binders: %v", err), views.StatusError)
		return
	}
	next, ok := state.Cycle(binders, m.songs.Binder.ID, delta)
	if !ok {
		return
	}
	m.grid.SetBinders(binders, next.ID)
	m.openBinder(next)
}

// CRUD entry points.

func (m *Model) handleAdd() {
	switch m.screen {
	case types.ScreenGrid:
		m.binderForm = state.NewBinderForm(m.grid.NextNumber())
		m.inputHandler.ChangeMode(types.ModeForm)

	case types.ScreenBinderSongs:
		if m.songs == nil || m.songs.Binder == nil {
			return
		}
		available, err := m.store.AvailableSongs(m.songs.Binder.ID)
		if err != nil {
			m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
			return
		}
		if len(available) == 0 {
			// Nothing left to pick, go straight to the create form.
			m.openSongForm(state.NewSongForm(), m.songs.Binder.ID)
			return
		}
		m.picker = state.NewSongPickerState(m.songs.Binder.ID, available)
		m.inputHandler.ChangeMode(types.ModePicker)

	case types.ScreenSongManager:
		m.openSongForm(state.NewSongForm(), 0)
	}
}

func (m *Model) handleRemove() {
	switch m.screen {
	case types.ScreenGrid:
		if binder, ok := m.grid.CurrentBinder(); ok {
			m.confirm = &confirmState{kind: confirmDeleteBinder, binder: binder}
			m.inputHandler.ChangeMode(types.ModeConfirm)
		}

	case types.ScreenBinderSongs:
		if m.songs == nil {
			return
		}
		song, ok := m.songs.CurrentSong()
		if !ok {
			m.setStatus("No song selected to remove.", views.StatusError)
			return
		}
		m.confirm = &confirmState{kind: confirmRemoveSong, song: song}
		m.inputHandler.ChangeMode(types.ModeConfirm)

	case types.ScreenSongManager:
		if m.manager == nil {
			return
		}
		song, ok := m.manager.CurrentSong()
		if !ok {
			m.setStatus("No song selected to delete.", views.StatusError)
			return
		}
		m.confirm = &confirmState{kind: confirmDeleteSong, song: song}
		m.inputHandler.ChangeMode(types.ModeConfirm)
	}
}

func (m *Model) handleEdit() {
	switch m.screen {
	case types.ScreenGrid:
		if binder, ok := m.grid.CurrentBinder(); ok {
			m.binderForm = state.EditBinderForm(binder)
			m.inputHandler.ChangeMode(types.ModeForm)
		}

	case types.ScreenBinderSongs, types.ScreenSongManager:
		list := m.activeList()
		if list == nil {
			return
		}
		song, ok := list.CurrentSong()
		if !ok {
			m.setStatus("No song selected to edit.", views.StatusError)
			return
		}
		m.openSongForm(state.EditSongForm(song), 0)
	}
}

func (m *Model) editFromSearch() {
	list := m.activeList()
	if list == nil {
		return
	}
	song, ok := list.CurrentSong()
	if !ok {
		m.setStatus("No song selected to edit.", views.StatusError)
		return
	}
	// Park the search so the form round-trip can restore it.
	m.savedSearch = list.Search.Query
	m.savedSearchActive = true
	m.openSongForm(state.EditSongForm(song), 0)
}

func (m *Model) openSongForm(form *state.SongForm, binderID int64) {
	m.reloadComposers()
	m.songForm = form
	m.songFormBinderID = binderID
	m.inputHandler.ChangeMode(types.ModeForm)
}

func (m *Model) handleOpenLink() {
	list := m.activeList()
	if list == nil {
		return
	}
	song, ok := list.CurrentSong()
	if !ok {
		return
	}
	link := strings.TrimSpace(song.Link)
	if link == "" {
		m.setStatus("This song does not have a link.", views.StatusError)
		return
	}
	if err := m.openLink(link); err != nil {
		m.setStatus(fmt.Sprintf("Failed to open link: %v", err), views.StatusError)
		return
	}
	m.setStatus(fmt.Sprintf("Opened %s.", song.DisplayTitle()), views.StatusInfo)
}

// Confirm dialogs.

func (m *Model) executeConfirm() {
	if m.confirm == nil {
		return
	}
	c := m.confirm
	m.confirm = nil

	switch c.kind {
	case confirmDeleteBinder:
		if err := m.store.DeleteBinder(c.binder.ID); err != nil {
			m.failOrStale(err, "Binder no longer exists.")
			m.reloadGrid(0)
			return
		}
		m.reloadGrid(0)
		m.setStatus(fmt.Sprintf("Deleted binder %02d.", c.binder.Number), views.StatusInfo)

	case confirmRemoveSong:
		if m.songs == nil || m.songs.Binder == nil {
			return
		}
		binderID := m.songs.Binder.ID
		if err := m.store.RemoveSongFromBinder(binderID, c.song.ID); err != nil {
			m.failOrStale(err, "That song is no longer in this binder.")
			m.reloadSongs()
			return
		}
		m.reloadSongs()
		m.setStatus(fmt.Sprintf("Removed %q from this binder.", c.song.DisplayTitle()), views.StatusInfo)

	case confirmDeleteSong:
		if err := m.store.DeleteSong(c.song.ID); err != nil {
			m.failOrStale(err, "That song no longer exists.")
			m.reloadManager()
			return
		}
		m.reloadManager()
		m.setStatus(fmt.Sprintf("Deleted %q.", c.song.DisplayTitle()), views.StatusInfo)
	}
}

// failOrStale reports a store error, downgrading a vanished row to a
// friendly notice.
func (m *Model) failOrStale(err error, staleMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		m.setStatus(staleMsg, views.StatusError)
		return
	}
	m.setStatus(err.Error(), views.StatusError)
}

// Picker.

func (m *Model) acceptPicker() {
	if m.picker == nil {
		return
	}
	p := m.picker

	if p.OnCreateRow() {
		m.picker = nil
		m.openSongForm(state.NewSongForm(), p.BinderID)
		return
	}

	checked := p.CheckedSongs()
	if len(checked) == 0 {
		// Enter on an unchecked row links just that song.
		if song, ok := p.CurrentSong(); ok {
			checked = []domain.Song{song}
		}
	}

	added := 0
	for _, song := range checked {
		if err := m.store.AddSongToBinder(p.BinderID, song.ID); err != nil {
			m.setStatus(err.Error(), views.StatusError)
			break
		}
		added++
	}
	m.picker = nil
	m.inputHandler.ChangeMode(types.ModeNormal)
	m.reloadSongs()
	if added > 0 {
		m.setStatus(fmt.Sprintf("Added %d song(s).", added), views.StatusInfo)
	}
}

// Forms.

func (m *Model) formRune(r rune) {
	if m.binderForm != nil {
		m.binderForm.PushRune(r)
		return
	}
	if m.songForm != nil {
		m.songForm.PushRune(r)
		m.songForm.UpdateSuggestion(m.composers)
	}
}

func (m *Model) formBackspace() {
	if m.binderForm != nil {
		m.binderForm.Backspace()
		return
	}
	if m.songForm != nil {
		m.songForm.Backspace()
		m.songForm.UpdateSuggestion(m.composers)
	}
}

func (m *Model) formNextField() {
	if m.binderForm != nil {
		m.binderForm.ToggleField()
		return
	}
	if m.songForm != nil {
		// Tab accepts a visible suggestion before it moves focus.
		if m.songForm.AcceptSuggestion() {
			return
		}
		m.songForm.ToggleField()
		m.songForm.UpdateSuggestion(m.composers)
	}
}

func (m *Model) formPrevField() {
	if m.binderForm != nil {
		m.binderForm.ToggleField()
		return
	}
	if m.songForm != nil {
		m.songForm.ToggleField()
		m.songForm.UpdateSuggestion(m.composers)
	}
}

func (m *Model) submitForm() {
	if m.binderForm != nil {
		m.submitBinderForm()
		return
	}
	if m.songForm != nil {
		m.submitSongForm()
	}
}

func (m *Model) submitBinderForm() {
	f := m.binderForm
	number, label, err := f.Parse()
	if err != nil {
		f.Err = err.Error()
		return
	}

	if f.EditID != 0 {
		if err := m.store.UpdateBinder(f.EditID, number, label); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				m.closeForm()
				m.setStatus("That binder no longer exists.", views.StatusError)
				m.reloadGrid(0)
				return
			}
			f.Err = err.Error()
			return
		}
		m.closeForm()
		m.reloadGrid(f.EditID)
		m.setStatus(fmt.Sprintf("Updated binder %02d.", number), views.StatusInfo)
		return
	}

	binder, err := m.store.CreateBinder(number, label)
	if err != nil {
		f.Err = err.Error()
		return
	}
	m.closeForm()
	m.reloadGrid(binder.ID)
	m.setStatus(fmt.Sprintf("Added binder %02d.", number), views.StatusInfo)
}

func (m *Model) submitSongForm() {
	f := m.songForm
	title, composer, link, err := f.Parse()
	if err != nil {
		f.Err = err.Error()
		return
	}

	if f.EditID != 0 {
		if err := m.store.UpdateSong(f.EditID, title, composer, link); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				m.closeForm()
				m.setStatus("That song no longer exists.", views.StatusError)
				m.reloadSongs()
				m.reloadManager()
				return
			}
			f.Err = err.Error()
			return
		}
		m.closeForm()
		m.reloadSongs()
		m.reloadManager()
		m.setStatus(fmt.Sprintf("Updated %q.", title), views.StatusInfo)
		return
	}

	song, err := m.store.CreateSong(title, composer, link)
	if err != nil {
		f.Err = err.Error()
		return
	}
	if m.songFormBinderID != 0 {
		if err := m.store.AddSongToBinder(m.songFormBinderID, song.ID); err != nil {
			m.setStatus(err.Error(), views.StatusError)
		}
	}
	m.closeForm()
	m.reloadSongs()
	m.reloadManager()
	m.setStatus(fmt.Sprintf("Added %q.", title), views.StatusInfo)
}

func (m *Model) cancelForm() {
	if m.songForm != nil && m.songForm.DismissSuggestion() {
		// First Esc only eats the suggestion.
		return
	}
	m.closeForm()
}

// closeForm drops any open form and restores either the saved search or
// normal mode.
func (m *Model) closeForm() {
	m.binderForm = nil
	m.songForm = nil
	m.songFormBinderID = 0

	if m.savedSearchActive {
		saved := m.savedSearch
		m.savedSearch = ""
		m.savedSearchActive = false
		if list := m.activeList(); list != nil {
			m.inputHandler.ChangeMode(types.ModeSearch)
			m.inputHandler.SetSearchText(saved)
			list.Search.Active = true
			list.SetQuery(saved)
			return
		}
	}
	m.inputHandler.ChangeMode(types.ModeNormal)
}

// Choice dialog (print report exit).

func (m *Model) commitChoice() tea.Cmd {
	if m.choice == nil {
		return nil
	}
	c := m.choice
	m.choice = nil

	switch c.selected {
	case 0: // apply
		applied := 0
		if m.report != nil {
			for _, a := range m.report.PendingAssignments() {
				if err := m.store.AddSongToBinder(a.BinderID, a.SongID); err != nil {
					m.setStatus(err.Error(), views.StatusError)
					break
				}
				applied++
			}
		}
		if c.exitApp {
			m.quitting = true
			return tea.Quit
		}
		m.inputHandler.ChangeMode(types.ModeNormal)
		m.returnToGrid()
		if applied > 0 {
			m.setStatus(fmt.Sprintf("Applied %d change(s).", applied), views.StatusInfo)
		}

	case 1: // discard
		if c.exitApp {
			m.quitting = true
			return tea.Quit
		}
		m.inputHandler.ChangeMode(types.ModeNormal)
		m.returnToGrid()

	default: // cancel, stay on the report
		m.inputHandler.ChangeMode(types.ModeNormal)
	}
	return nil
}

// Reload helpers.

func (m *Model) reloadSongs() {
	if m.songs == nil || m.songs.Binder == nil {
		return
	}
	songs, err := m.store.SongsForBinder(m.songs.Binder.ID)
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
		return
	}
	m.songs.SetSongs(songs)
}

func (m *Model) reloadManager() {
	if m.manager == nil {
		return
	}
	songs, err := m.store.AllSongs()
	if err != nil {
		m.setStatus(fmt.Sprintf("Failed to load songs: %v", err), views.StatusError)
		return
	}
	m.manager.SetSongs(songs)
	m.reloadComposers()
}

func (m *Model) reloadComposers() {
	composers, err := m.store.Composers()
	if err != nil {
		log.Printf("failed to load composers: %v", err)
		return
	}
	m.composers = composers
}

// Status line.

func (m *Model) setStatus(text string, kind views.StatusKind) {
	m.status = text
	m.statusKind = kind
}

func (m *Model) clearStatus() {
	m.status = ""
}

func (m *Model) fetchHelpPager() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	content := renderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	listHeight := m.height - 6
	if listHeight < 5 {
		listHeight = 5
	}

	var body string
	switch m.screen {
	case types.ScreenGrid:
		body = views.RenderGrid(m.grid, m.styles)
	case types.ScreenBinderSongs:
		title := "Songs"
		if m.songs != nil && m.songs.Binder != nil {
			title = fmt.Sprintf("Binder %02d • %s", m.songs.Binder.Number, m.songs.Binder.Label)
		}
		body = m.styles.Title.Render(title) + "\n" + views.RenderSongList(m.songs, m.styles, listHeight)
	case types.ScreenSongManager:
		body = m.styles.Title.Render("All songs") + "\n" + views.RenderSongList(m.manager, m.styles, listHeight)
	case types.ScreenPrintReport:
		body = m.styles.Title.Render("Print report") + "\n" + views.RenderReport(m.report, m.styles, listHeight)
	}

	// Popups replace the screen content while they are open.
	switch {
	case m.confirm != nil:
		body = views.Overlay(views.RenderConfirm(m.confirm.question(), m.styles), m.width, m.height, m.styles)
	case m.choice != nil:
		body = views.Overlay(views.RenderChoice("Apply the marked songs?", m.choice.labels(), m.choice.selected, m.styles), m.width, m.height, m.styles)
	case m.binderForm != nil:
		body = views.Overlay(views.RenderBinderForm(m.binderForm, m.styles), m.width, m.height, m.styles)
	case m.songForm != nil:
		body = views.Overlay(views.RenderSongForm(m.songForm, m.styles), m.width, m.height, m.styles)
	case m.picker != nil:
		body = views.Overlay(views.RenderPicker(m.picker, m.styles, listHeight), m.width, m.height, m.styles)
	}

	if !m.cfg.UISettings.ShowFooter {
		return m.styles.Main.Render(body)
	}

	searching := false
	if list := m.activeList(); list != nil {
		searching = list.Search.Active
	}
	footer := views.RenderFooter(m.status, m.statusKind, m.screen, searching, m.styles)
	return m.styles.Main.Render(body + "\n" + footer)
}
