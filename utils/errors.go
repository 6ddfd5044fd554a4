package utils

import "strings"

// IsUniqueViolation reports whether err is a unique-constraint failure from
// the store. Application-level existence checks are advisory only; the
// constraint is the final authority, and losing a race to it must surface as
// a conflict rather than an internal error. Matches both the Postgres
// ("duplicate key value violates unique constraint") and SQLite
// ("UNIQUE constraint failed") wordings.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
