package user

import (
	"context"
	"time"
)

type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	SoftDeleteUser(ctx context.Context, id ID, at time.Time) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
