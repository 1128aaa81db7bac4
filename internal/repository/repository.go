// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateConflict maps Postgres concurrency failures onto
// domain.ErrConcurrentModification so callers can retry a cascade without
// inspecting driver errors. Other errors pass through unchanged.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return domain.ErrConcurrentModification
		}
	}

	return err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
