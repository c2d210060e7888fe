package domain

import "strings"

// Binder represents a physical folder of sheet music. Number is the stable,
// human-assigned sort key shown on the cover; Label is the friendly name.
type Binder struct {
	ID     int64
	Number int64
	Label  string
}

// Song represents a titled piece of music. Link is an optional external
// reference (URL or other text) and is empty when absent.
type Song struct {
	ID       int64
	Title    string
	Composer string
	Link     string
}

// DisplayTitle returns "Title - Composer", omitting the dash when the
// composer is blank. Lists and pickers rely on this formatting.
func (s Song) DisplayTitle() string {
	if strings.TrimSpace(s.Composer) == "" {
		return s.Title
	}
	return s.Title + " - " + s.Composer
}

// HasLink reports whether the song carries a non-empty link.
func (s Song) HasLink() bool {
	return strings.TrimSpace(s.Link) != ""
}
