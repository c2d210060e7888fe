package logic

import (
	"strings"

	"songbinder/internal/domain"
)

// FilterSongs derives the visible list from a snapshot. The query is a
// case-insensitive substring match against title or composer; a blank or
// whitespace-only query matches everything. With noLinkOnly set, only songs
// without a link survive. Input order is preserved and the input slice is
// never mutated.
func FilterSongs(songs []domain.Song, query string, noLinkOnly bool) []domain.Song {
	query = strings.ToLower(strings.TrimSpace(query))

	var visible []domain.Song
	for _, song := range songs {
		if noLinkOnly && song.HasLink() {
			continue
		}
		if query != "" && !matchesQuery(song, query) {
			continue
		}
		visible = append(visible, song)
	}
	return visible
}

func matchesQuery(song domain.Song, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(song.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(song.Composer), lowerQuery)
}

// SuggestComposer returns the first known composer name starting with the
// typed prefix, case-insensitively. Empty prefix yields no suggestion.
func SuggestComposer(known []string, prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return ""
	}
	lower := strings.ToLower(prefix)
	for _, name := range known {
		if strings.HasPrefix(strings.ToLower(name), lower) && !strings.EqualFold(name, prefix) {
			return name
		}
	}
	return ""
}
