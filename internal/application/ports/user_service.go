package ports

import (
	"context"

	"user-accounts-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context) (user.Users, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
	EmailExists(ctx context.Context, email string) (bool, error)
}
