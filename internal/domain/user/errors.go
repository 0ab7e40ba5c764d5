package user

import "errors"

var (
	// ErrNotFound is returned by mutations referencing an id that does not
	// exist. Plain reads report absence as a nil user instead.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when another account already holds the email,
	// regardless of its active flag. The database unique index is the final
	// arbiter; the validator pre-check only improves error reporting.
	ErrEmailTaken = errors.New("email already registered")
)
