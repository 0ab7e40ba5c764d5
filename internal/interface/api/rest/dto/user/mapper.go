package user

import (
	"errors"
	"strings"
	"time"

	"user-accounts-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        int64(uDomain.ID),
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		BirthDate: uDomain.BirthDate,
		Phone:     uDomain.Phone,
		Active:    uDomain.Active,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// Name and phone are stored trimmed, matching what the validator checked;
// the service normalizes the email itself.
func ToDomainUser(req CreateRequest) (user.User, error) {
	d, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return user.User{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
	}

	var u = user.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		BirthDate: d,
		Phone:     strings.TrimSpace(req.Phone),
	}

	return u, nil
}

func ToDomainUserUpdate(req UpdateRequest) (user.User, error) {
	d, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return user.User{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
	}

	var u = user.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		BirthDate: d,
		Phone:     strings.TrimSpace(req.Phone),
		Active:    req.Active,
	}

	return u, nil
}
