package user

import (
	"time"
)

type (
	// ID is assigned by the persistence layer and never changes afterwards.
	ID   int64
	User struct {
		ID           ID
		Name         string
		Email        string
		PasswordHash string
		BirthDate    time.Time
		Phone        string

		// Active is true from creation until the account is removed.
		// Removal never deletes the row.
		Active bool

		CreatedAt time.Time
		UpdatedAt *time.Time
	}
	Users []*User
)
