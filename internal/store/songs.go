package store

import (
	"fmt"

	"songbinder/internal/domain"
)

// Song ordering matches the on-stage binder tabs: title first, composer as
// tiebreak, both case-insensitive.
const songOrder = "ORDER BY title COLLATE NOCASE, composer COLLATE NOCASE"

func (s *Store) scanSongs(query string, args ...any) ([]domain.Song, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.Song
	for rows.Next() {
		var song domain.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Composer, &song.Link); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate songs: %w", err)
	}
	return songs, nil
}

// AllSongs returns the whole catalog.
func (s *Store) AllSongs() ([]domain.Song, error) {
	return s.scanSongs(
		"SELECT id, title, COALESCE(composer, ''), COALESCE(link, '') FROM songs " + songOrder)
}

// SongsForBinder returns the songs linked to one binder.
func (s *Store) SongsForBinder(binderID int64) ([]domain.Song, error) {
	return s.scanSongs(
		`SELECT s.id, s.title, COALESCE(s.composer, ''), COALESCE(s.link, '')
		 FROM songs s
		 JOIN binder_songs bs ON bs.song_id = s.id
		 WHERE bs.binder_id = ? `+songOrder, binderID)
}

// AvailableSongs returns catalog songs not yet linked to the given binder,
// feeding the add-song picker.
func (s *Store) AvailableSongs(binderID int64) ([]domain.Song, error) {
	return s.scanSongs(
		`SELECT id, title, COALESCE(composer, ''), COALESCE(link, '')
		 FROM songs
		 WHERE id NOT IN (SELECT song_id FROM binder_songs WHERE binder_id = ?) `+songOrder,
		binderID)
}

// Composers returns the distinct non-empty composer names for autocomplete.
func (s *Store) Composers() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT composer FROM songs
		 WHERE composer IS NOT NULL AND TRIM(composer) != ''
		 ORDER BY composer COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to load composers: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan composer: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate composers: %w", err)
	}
	return names, nil
}

// CreateSong inserts a song and returns it with the assigned id.
func (s *Store) CreateSong(title, composer, link string) (domain.Song, error) {
	res, err := s.db.Exec(
		"INSERT INTO songs (title, composer, link) VALUES (?, ?, ?)", title, composer, link)
	if err != nil {
		return domain.Song{}, fmt.Errorf("failed to insert song: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Song{}, fmt.Errorf("failed to read song id: %w", err)
	}
	return domain.Song{ID: id, Title: title, Composer: composer, Link: link}, nil
}

// UpdateSong rewrites all editable fields of a song.
func (s *Store) UpdateSong(id int64, title, composer, link string) error {
	res, err := s.db.Exec(
		"UPDATE songs SET title = ?, composer = ?, link = ? WHERE id = ?",
		title, composer, link, id)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check song update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("song %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteSong removes a song from the catalog and, via cascade, from every
// binder that carried it.
func (s *Store) DeleteSong(id int64) error {
	res, err := s.db.Exec("DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check song delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("song %d: %w", id, ErrNotFound)
	}
	return nil
}

// AddSongToBinder links a song into a binder. Re-adding an already linked
// song is a no-op.
func (s *Store) AddSongToBinder(binderID, songID int64) error {
	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO binder_songs (binder_id, song_id) VALUES (?, ?)",
		binderID, songID); err != nil {
		return fmt.Errorf("failed to link song to binder: %w", err)
	}
	return nil
}

// RemoveSongFromBinder unlinks a song from one binder without touching the
// catalog entry.
func (s *Store) RemoveSongFromBinder(binderID, songID int64) error {
	res, err := s.db.Exec(
		"DELETE FROM binder_songs WHERE binder_id = ? AND song_id = ?", binderID, songID)
	if err != nil {
		return fmt.Errorf("failed to unlink song: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check unlink: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("song %d in binder %d: %w", songID, binderID, ErrNotFound)
	}
	return nil
}

// DirectorSongIDs returns the song ids in the director's binder (number 0),
// the reference set the print report compares everything against. A missing
// director binder yields an empty set.
func (s *Store) DirectorSongIDs() (map[int64]bool, error) {
	rows, err := s.db.Query(
		`SELECT bs.song_id FROM binder_songs bs
		 JOIN binders b ON b.id = bs.binder_id
		 WHERE b.number = 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to load director songs: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan song id: %w", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate song ids: %w", err)
	}
	return ids, nil
}
