package store

import (
	"fmt"

	"songbinder/internal/domain"
)

// Binders returns every binder sorted numerically. This query is the single
// source of truth for binder ordering in the UI.
func (s *Store) Binders() ([]domain.Binder, error) {
	rows, err := s.db.Query("SELECT id, number, label FROM binders ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("failed to load binders: %w", err)
	}
	defer rows.Close()

	var binders []domain.Binder
	for rows.Next() {
		var b domain.Binder
		if err := rows.Scan(&b.ID, &b.Number, &b.Label); err != nil {
			return nil, fmt.Errorf("failed to scan binder: %w", err)
		}
		binders = append(binders, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate binders: %w", err)
	}
	return binders, nil
}

// CreateBinder inserts a new binder row and returns the hydrated struct so
// the caller can focus it without re-querying.
func (s *Store) CreateBinder(number int64, label string) (domain.Binder, error) {
	res, err := s.db.Exec("INSERT INTO binders (number, label) VALUES (?, ?)", number, label)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Binder{}, fmt.Errorf("binder number %d already exists", number)
		}
		return domain.Binder{}, fmt.Errorf("failed to insert binder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Binder{}, fmt.Errorf("failed to read binder id: %w", err)
	}
	return domain.Binder{ID: id, Number: number, Label: label}, nil
}

// UpdateBinder rewrites number and label. Zero touched rows surfaces
// ErrNotFound so the UI can recover instead of silently continuing.
func (s *Store) UpdateBinder(id, number int64, label string) error {
	res, err := s.db.Exec(
		"UPDATE binders SET number = ?, label = ? WHERE id = ?", number, label, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("binder number %d already exists", number)
		}
		return fmt.Errorf("failed to update binder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check binder update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("binder %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteBinder removes a binder; the schema cascades to binder_songs.
func (s *Store) DeleteBinder(id int64) error {
	res, err := s.db.Exec("DELETE FROM binders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete binder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check binder delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("binder %d: %w", id, ErrNotFound)
	}
	return nil
}
