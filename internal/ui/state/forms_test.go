package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbinder/internal/domain"
)

func TestBinderFormDigitsOnly(t *testing.T) {
	f := NewBinderForm(5)
	assert.Equal(t, "5", f.Number)

	f.PushRune('a')
	assert.Equal(t, "5", f.Number)
	f.PushRune('2')
	assert.Equal(t, "52", f.Number)

	f.ToggleField()
	f.PushRune('J')
	f.PushRune('a')
	assert.Equal(t, "Ja", f.Label)
	f.Backspace()
	assert.Equal(t, "J", f.Label)
}

func TestBinderFormValidation(t *testing.T) {
	f := NewBinderForm(0)
	_, _, err := f.Parse()
	require.Error(t, err)

	f.Number = "3"
	_, _, err = f.Parse()
	require.Error(t, err)

	f.Label = "  Marching  "
	number, label, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, int64(3), number)
	assert.Equal(t, "Marching", label)
}

func TestSongFormValidation(t *testing.T) {
	f := NewSongForm()
	_, _, _, err := f.Parse()
	require.Error(t, err)

	f.Title = " Caravan "
	f.Composer = " Tizol "
	title, composer, link, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, "Caravan", title)
	assert.Equal(t, "Tizol", composer)
	assert.Empty(t, link)
}

func TestSongFormEditPrefill(t *testing.T) {
	f := EditSongForm(domain.Song{ID: 4, Title: "Caravan", Composer: "Tizol", Link: "https://x"})
	assert.Equal(t, int64(4), f.EditID)
	assert.Equal(t, "Caravan", f.Title)
	assert.Equal(t, SongFieldTitle, f.Active)
}

func TestComposerSuggestionLifecycle(t *testing.T) {
	known := []string{"Desmond", "Dorham", "Tizol"}
	f := NewSongForm()
	f.Title = "X"
	f.ToggleField()
	require.Equal(t, SongFieldComposer, f.Active)

	// One character is not enough.
	f.PushRune('d')
	f.UpdateSuggestion(known)
	assert.Empty(t, f.Suggestion)

	f.PushRune('e')
	f.UpdateSuggestion(known)
	assert.Equal(t, "Desmond", f.Suggestion)
	assert.Equal(t, "smond", f.SuggestionSuffix())

	require.True(t, f.AcceptSuggestion())
	assert.Equal(t, "Desmond", f.Composer)
	assert.Empty(t, f.Suggestion)

	// Accepted: quiet until the field is edited again.
	f.UpdateSuggestion(known)
	assert.Empty(t, f.Suggestion)
	f.Backspace()
	f.UpdateSuggestion(known)
	assert.Equal(t, "Desmond", f.Suggestion)
}

func TestDismissSuggestionFallsThroughWhenAbsent(t *testing.T) {
	known := []string{"Tizol"}
	f := NewSongForm()
	f.Active = SongFieldComposer
	f.PushRune('t')
	f.PushRune('i')
	f.UpdateSuggestion(known)
	require.Equal(t, "Tizol", f.Suggestion)

	// First Esc eats the suggestion, second would close the form.
	assert.True(t, f.DismissSuggestion())
	assert.False(t, f.DismissSuggestion())

	f.UpdateSuggestion(known)
	assert.Empty(t, f.Suggestion)
}

func TestExactComposerGetsNoSuggestion(t *testing.T) {
	f := NewSongForm()
	f.Active = SongFieldComposer
	f.Composer = "tizol"
	f.UpdateSuggestion([]string{"Tizol"})
	assert.Empty(t, f.Suggestion)
}
