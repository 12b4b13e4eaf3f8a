package db

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Sentinel errors handlers map to HTTP statuses.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateBid   = errors.New("caterer already has a bid on this request")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// notFound converts sql.ErrNoRows so callers never see driver internals.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
