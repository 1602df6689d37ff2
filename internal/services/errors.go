// internal/services/errors.go
package services

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("name already in use")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInUse         = errors.New("record is referenced by other records")
)

// isUniqueViolation reports whether err is a unique constraint violation
// raised by the database. The name pre-checks race with concurrent writers,
// so the constraint error is the authoritative signal.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
