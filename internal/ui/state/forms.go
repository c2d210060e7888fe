package state

import (
	"errors"
	"strconv"
	"strings"

	"songbinder/internal/domain"
)

// BinderField identifies the focused field of the binder form.
type BinderField int

const (
	BinderFieldNumber BinderField = iota
	BinderFieldLabel
)

// BinderForm is the modal for creating or editing a binder. EditID is zero
// when creating.
type BinderForm struct {
	EditID int64
	Number string
	Label  string
	Active BinderField
	Err    string
}

// NewBinderForm pre-fills the number field, typically with the next free
// binder number.
func NewBinderForm(number int64) *BinderForm {
	f := &BinderForm{}
	if number > 0 {
		f.Number = strconv.FormatInt(number, 10)
	}
	return f
}

// EditBinderForm populates the form from an existing binder.
func EditBinderForm(b domain.Binder) *BinderForm {
	return &BinderForm{
		EditID: b.ID,
		Number: strconv.FormatInt(b.Number, 10),
		Label:  b.Label,
	}
}

// ToggleField swaps focus between number and label.
func (f *BinderForm) ToggleField() {
	if f.Active == BinderFieldNumber {
		f.Active = BinderFieldLabel
	} else {
		f.Active = BinderFieldNumber
	}
}

// PushRune appends a character to the focused field. The number field only
// accepts digits.
func (f *BinderForm) PushRune(r rune) {
	switch f.Active {
	case BinderFieldNumber:
		if r >= '0' && r <= '9' {
			f.Number += string(r)
		}
	case BinderFieldLabel:
		f.Label += string(r)
	}
}

// Backspace removes the last character of the focused field.
func (f *BinderForm) Backspace() {
	switch f.Active {
	case BinderFieldNumber:
		f.Number = trimLastRune(f.Number)
	case BinderFieldLabel:
		f.Label = trimLastRune(f.Label)
	}
}

// Parse validates the form and returns the typed values.
func (f *BinderForm) Parse() (int64, string, error) {
	raw := strings.TrimSpace(f.Number)
	if raw == "" {
		return 0, "", errors.New("binder number is required")
	}
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, "", errors.New("binder number must be an integer")
	}
	label := strings.TrimSpace(f.Label)
	if label == "" {
		return 0, "", errors.New("binder label is required")
	}
	return number, label, nil
}

// SongField identifies the focused field of the song form.
type SongField int

const (
	SongFieldTitle SongField = iota
	SongFieldComposer
	SongFieldLink
)

// SongForm is the modal for creating or editing a song, with composer
// autocomplete against the known composer names. EditID is zero when
// creating.
type SongForm struct {
	EditID   int64
	Title    string
	Composer string
	Link     string
	Active   SongField
	Err      string

	Suggestion string
	noSuggest  bool // user dismissed or accepted, stays off until edited
}

// NewSongForm is an empty creation form.
func NewSongForm() *SongForm {
	return &SongForm{}
}

// EditSongForm populates the form from an existing song.
func EditSongForm(s domain.Song) *SongForm {
	return &SongForm{
		EditID:   s.ID,
		Title:    s.Title,
		Composer: s.Composer,
		Link:     s.Link,
	}
}

// ToggleField cycles focus title, composer, link.
func (f *SongForm) ToggleField() {
	switch f.Active {
	case SongFieldTitle:
		f.Active = SongFieldComposer
	case SongFieldComposer:
		f.Active = SongFieldLink
	default:
		f.Active = SongFieldTitle
	}
	if f.Active != SongFieldComposer {
		f.Suggestion = ""
	}
}

// PushRune appends a character to the focused field.
func (f *SongForm) PushRune(r rune) {
	switch f.Active {
	case SongFieldTitle:
		f.Title += string(r)
	case SongFieldComposer:
		f.noSuggest = false
		f.Composer += string(r)
	case SongFieldLink:
		f.Link += string(r)
	}
}

// Backspace removes the last character of the focused field.
func (f *SongForm) Backspace() {
	switch f.Active {
	case SongFieldTitle:
		f.Title = trimLastRune(f.Title)
	case SongFieldComposer:
		f.Composer = trimLastRune(f.Composer)
		f.noSuggest = false
	case SongFieldLink:
		f.Link = trimLastRune(f.Link)
	}
}

// Parse validates the form and returns trimmed values.
func (f *SongForm) Parse() (title, composer, link string, err error) {
	title = strings.TrimSpace(f.Title)
	if title == "" {
		return "", "", "", errors.New("song title is required")
	}
	return title, strings.TrimSpace(f.Composer), strings.TrimSpace(f.Link), nil
}

// UpdateSuggestion recomputes the composer autocomplete against the known
// names. Suggestions need at least two typed characters and go quiet after
// accept or dismiss.
func (f *SongForm) UpdateSuggestion(composers []string) {
	if f.Active != SongFieldComposer || f.noSuggest || len([]rune(f.Composer)) < 2 {
		f.Suggestion = ""
		return
	}
	lower := strings.ToLower(f.Composer)
	for _, candidate := range composers {
		if strings.HasPrefix(strings.ToLower(candidate), lower) {
			if strings.EqualFold(candidate, f.Composer) {
				f.Suggestion = ""
			} else {
				f.Suggestion = candidate
			}
			return
		}
	}
	f.Suggestion = ""
}

// AcceptSuggestion replaces the composer with the suggested name. Returns
// false when there was nothing to accept.
func (f *SongForm) AcceptSuggestion() bool {
	if f.SuggestionSuffix() == "" {
		return false
	}
	f.Composer = f.Suggestion
	f.Suggestion = ""
	f.noSuggest = true
	return true
}

// DismissSuggestion hides the current suggestion. Returns false when no
// suggestion was showing, so the caller can fall through to closing the
// form.
func (f *SongForm) DismissSuggestion() bool {
	if f.Active != SongFieldComposer || f.Suggestion == "" {
		return false
	}
	f.Suggestion = ""
	f.noSuggest = true
	return true
}

// SuggestionSuffix returns the ghost text to render after the typed
// composer prefix.
func (f *SongForm) SuggestionSuffix() string {
	if f.Suggestion == "" {
		return ""
	}
	typed := len([]rune(f.Composer))
	runes := []rune(f.Suggestion)
	if typed >= len(runes) {
		return ""
	}
	return string(runes[typed:])
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
