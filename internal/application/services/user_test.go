package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "user-accounts-api/internal/domain/user"
	"user-accounts-api/internal/infrastructure/mq"
)

type FakeRepository struct {
	FetchUsersFunc     func(ctx context.Context) (domain.Users, error)
	FetchUserByIDFunc  func(ctx context.Context, id domain.ID) (*domain.User, error)
	CreateUserFunc     func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateUserFunc     func(ctx context.Context, req domain.User) (*domain.User, error)
	SoftDeleteUserFunc func(ctx context.Context, id domain.ID, at time.Time) (*domain.User, error)
	EmailExistsFunc    func(ctx context.Context, email string) (bool, error)
}

func (f *FakeRepository) FetchUsers(ctx context.Context) (domain.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersFunc(ctx)
}
func (f *FakeRepository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeRepository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeRepository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, req)
}
func (f *FakeRepository) SoftDeleteUser(ctx context.Context, id domain.ID, at time.Time) (*domain.User, error) {
	if f.SoftDeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SoftDeleteUserFunc(ctx, id, at)
}
func (f *FakeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.EmailExistsFunc == nil {
		return false, errors.New("not used")
	}
	return f.EmailExistsFunc(ctx, email)
}

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ { return &fakeMQ{in: make(chan mq.Event, 8)} }

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}

func someStoredUser() *domain.User {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           7,
		Name:         "Ana Silva",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$stored",
		BirthDate:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:        "(11) 98888-7777",
		Active:       true,
		CreatedAt:    created,
	}
}

func TestUserService_CreateUser(t *testing.T) {
	var captured domain.User
	stored := someStoredUser()

	repo := &FakeRepository{
		CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			captured = req
			return stored, nil
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	got, err := us.CreateUser(context.Background(), domain.User{
		Name:      "Ana Silva",
		Email:     "ANA@EXAMPLE.COM",
		BirthDate: stored.BirthDate,
		Phone:     "(11) 98888-7777",
	}, "secret1")
	require.NoError(t, err)
	require.Equal(t, stored, got)

	// domain defaults applied before persisting
	assert.Equal(t, "ana@example.com", captured.Email)
	assert.True(t, captured.Active)
	assert.False(t, captured.CreatedAt.IsZero())
	assert.Nil(t, captured.UpdatedAt)

	// the stored value is a one-way hash of the password, not the password
	require.NotEqual(t, "secret1", captured.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured.PasswordHash), []byte("secret1")))

	ev := <-fmq.in
	assert.Equal(t, "POST", ev.Method)
	assert.Equal(t, "7", ev.UserID)
	assert.Equal(t, "ana@example.com", ev.Payload.Email)
}

func TestUserService_CreateUser_Conflict(t *testing.T) {
	repo := &FakeRepository{
		CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	_, err := us.CreateUser(context.Background(), domain.User{Email: "ana@example.com"}, "secret1")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Empty(t, fmq.in)
}

func TestUserService_UpdateUser(t *testing.T) {
	var captured domain.User
	stored := someStoredUser()

	repo := &FakeRepository{
		UpdateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			captured = req
			return stored, nil
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	got, err := us.UpdateUser(context.Background(), domain.User{
		ID:        7,
		Name:      "Ana Souza",
		Email:     "ANA@EXAMPLE.COM",
		BirthDate: stored.BirthDate,
		Active:    false,
		// hostile request content; the update path must not carry these
		PasswordHash: "injected",
		CreatedAt:    time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, stored, got)

	assert.Equal(t, "ana@example.com", captured.Email)
	require.NotNil(t, captured.UpdatedAt)

	// password hash and created_at keep their stored values: the update
	// statement never touches those columns
	assert.Equal(t, "$2a$10$stored", got.PasswordHash)
	assert.Equal(t, stored.CreatedAt, got.CreatedAt)

	ev := <-fmq.in
	assert.Equal(t, "PUT", ev.Method)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := &FakeRepository{
		UpdateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			return nil, nil
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	_, err := us.UpdateUser(context.Background(), domain.User{ID: 999, Email: "x@example.com"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fmq.in)
}

func TestUserService_DeleteUser(t *testing.T) {
	deactivated := someStoredUser()
	deactivated.Active = false

	var gotID domain.ID
	repo := &FakeRepository{
		SoftDeleteUserFunc: func(ctx context.Context, id domain.ID, at time.Time) (*domain.User, error) {
			gotID = id
			require.False(t, at.IsZero())
			return deactivated, nil
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	require.NoError(t, us.DeleteUser(context.Background(), 7))
	assert.Equal(t, domain.ID(7), gotID)

	ev := <-fmq.in
	assert.Equal(t, "DELETE", ev.Method)
	assert.False(t, ev.Payload.Active)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := &FakeRepository{
		SoftDeleteUserFunc: func(ctx context.Context, id domain.ID, at time.Time) (*domain.User, error) {
			return nil, nil
		},
	}
	fmq := newFakeMQ()
	us := NewUserService(repo, fmq, testCounter())

	err := us.DeleteUser(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fmq.in)
}

func TestUserService_FindUserByID_AbsentIsNotAnError(t *testing.T) {
	repo := &FakeRepository{
		FetchUserByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
			return nil, nil
		},
	}
	us := NewUserService(repo, newFakeMQ(), testCounter())

	u, err := us.FindUserByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserService_EmailExists_Normalizes(t *testing.T) {
	var asked string
	repo := &FakeRepository{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) {
			asked = email
			return true, nil
		},
	}
	us := NewUserService(repo, newFakeMQ(), testCounter())

	exists, err := us.EmailExists(context.Background(), "  ANA@Example.Com ")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "ana@example.com", asked)
}
