package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"songbinder/internal/domain"
)

var sampleSongs = []domain.Song{
	{ID: 1, Title: "Autumn Leaves", Composer: "Kosma", Link: "https://example.com/al"},
	{ID: 2, Title: "Blue Bossa", Composer: "Dorham", Link: ""},
	{ID: 3, Title: "Caravan", Composer: "Tizol", Link: "https://example.com/c"},
	{ID: 4, Title: "Take Five", Composer: "Desmond", Link: "   "},
}

func ids(songs []domain.Song) []int64 {
	out := make([]int64, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	got := FilterSongs(sampleSongs, "", false)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestFilterWhitespaceQueryMatchesAll(t *testing.T) {
	got := FilterSongs(sampleSongs, "   \t", false)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestFilterCaseInsensitive(t *testing.T) {
	// Same match set regardless of query casing.
	lower := FilterSongs(sampleSongs, "cara", false)
	upper := FilterSongs(sampleSongs, "CARA", false)
	mixed := FilterSongs(sampleSongs, "CaRa", false)
	assert.Equal(t, []int64{3}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, ids(lower), ids(mixed))
}

func TestFilterMatchesComposer(t *testing.T) {
	got := FilterSongs(sampleSongs, "desmond", false)
	assert.Equal(t, []int64{4}, ids(got))
}

func TestFilterNoLinkOnly(t *testing.T) {
	// Whitespace-only links count as absent.
	got := FilterSongs(sampleSongs, "", true)
	assert.Equal(t, []int64{2, 4}, ids(got))
}

func TestFilterQueryAndToggleCombine(t *testing.T) {
	got := FilterSongs(sampleSongs, "b", true)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterIdempotent(t *testing.T) {
	once := FilterSongs(sampleSongs, "a", true)
	twice := FilterSongs(once, "a", true)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterMonotonic(t *testing.T) {
	// Extending the query can only shrink the match set.
	broad := FilterSongs(sampleSongs, "a", false)
	narrow := FilterSongs(sampleSongs, "an", false)
	assert.LessOrEqual(t, len(narrow), len(broad))
	broadSet := make(map[int64]bool)
	for _, id := range ids(broad) {
		broadSet[id] = true
	}
	for _, id := range ids(narrow) {
		assert.True(t, broadSet[id])
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	input := append([]domain.Song(nil), sampleSongs...)
	got := FilterSongs(input, "a", false)
	assert.Equal(t, sampleSongs, input)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestSuggestComposer(t *testing.T) {
	known := []string{"Desmond", "Dorham", "Kosma"}
	assert.Equal(t, "Desmond", SuggestComposer(known, "de"))
	assert.Equal(t, "Dorham", SuggestComposer(known, "Do"))
	assert.Equal(t, "", SuggestComposer(known, ""))
	assert.Equal(t, "", SuggestComposer(known, "z"))
	// An exact match needs no suggestion.
	assert.Equal(t, "", SuggestComposer(known, "Kosma"))
}
