package user

import (
	"time"
)

// User is the read representation: the subset of account fields safe to hand
// to callers. It carries neither the password hash nor updated_at.
type (
	User struct {
		ID        int64     `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		BirthDate time.Time `json:"birth_date"`
		Phone     string    `json:"phone,omitempty"`
		Active    bool      `json:"active"`
		CreatedAt time.Time `json:"created_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
