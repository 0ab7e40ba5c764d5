package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domain "user-accounts-api/internal/domain/user"
	"user-accounts-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it too.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.BirthDate,
			&u.Phone,
			&u.Active,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, int64(id)).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.Phone,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Email, req.PasswordHash, req.BirthDate, req.Phone, req.CreatedAt,
	).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.Phone,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID,
		req.Name, req.Email, req.BirthDate, req.Phone, req.Active, req.UpdatedAt, int64(req.ID),
	).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.Phone,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) SoftDeleteUser(ctx context.Context, id domain.ID, at time.Time) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SoftDeleteUserByID, at, int64(id)).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.Phone,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectEmailExists, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
