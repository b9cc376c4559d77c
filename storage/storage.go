// Package storage is the data-access layer. Every method issues a single
// statement against the injected *gorm.DB; nothing here opens a transaction
// or coordinates across rows. Lookups return nil, nil when no row matches —
// absence is a normal outcome, not an error. Updates of a missing id are a
// silent no-op for the same reason: the Updates statement matches zero rows
// and the follow-up fetch reports absence.
package storage

import (
	"errors"

	"gorm.io/gorm"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// notFoundAsNil collapses gorm's record-not-found into a nil error so that
// callers can treat absence uniformly.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
