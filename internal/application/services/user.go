package services

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"user-accounts-api/internal/application/ports"
	domain "user-accounts-api/internal/domain/user"
	"user-accounts-api/internal/infrastructure/mq"
	"user-accounts-api/internal/interface/api/rest/dto/user"
)

// UserService is the only writer of user state. Requests reach it already
// validated; it applies domain defaults (hashing, lowercase email,
// timestamps, the active flag) and talks to the repository.
type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// FindUserByID returns nil, nil when the id is unknown: absence is a normal
// outcome for reads, not an error.
func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u.Email = normalizeEmail(u.Email)
	u.PasswordHash = string(hash)
	u.Active = true
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = nil

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(uRet, http.MethodPost)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

// UpdateUser overwrites name, email, birth date, phone and the active flag.
// The password hash and creation timestamp are not touched by the update
// statement, whatever the request carries.
func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	now := time.Now().UTC()
	u.UpdatedAt = &now

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, domain.ErrNotFound
	}

	us.publish(uRet, http.MethodPut)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteUser deactivates the account. The row stays in place with
// active = false.
func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	u, err := us.userRepository.SoftDeleteUser(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}

	us.publish(u, http.MethodDelete)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return us.userRepository.EmailExists(ctx, normalizeEmail(email))
}

func (us *UserService) publish(u *domain.User, method string) {
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  strconv.FormatInt(int64(u.ID), 10),
		Payload: user.ToResponseUser(*u),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
