package validator

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"user-accounts-api/internal/domain/user"
	dto "user-accounts-api/internal/interface/api/rest/dto/user"
)

const (
	minNameLen = 3
	maxNameLen = 100

	minPasswordLen   = 6
	maxPasswordBytes = 72 // bcrypt operates on bytes and rejects longer input

	adultAge = 18
)

// Brazilian landline/mobile format: (XX) XXXX-XXXX or (XX) XXXXX-XXXX.
var phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

type (
	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	// FieldErrors keeps rule order so a client sees every violation at once,
	// in a stable order.
	FieldErrors []FieldError
)

func (fe *FieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// EmailChecker is the one validation rule that needs I/O: the
// case-insensitive uniqueness lookup.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Validator struct {
	emails EmailChecker
}

func New(emails EmailChecker) *Validator {
	return &Validator{emails: emails}
}

// ValidateCreate evaluates every field rule (no short-circuit between
// fields) and then the uniqueness pre-check. A taken email comes back as
// user.ErrEmailTaken; the database unique index still has the last word at
// commit time.
func (v *Validator) ValidateCreate(ctx context.Context, r dto.CreateRequest) (FieldErrors, error) {
	errs := checkCommon(r.Name, r.Email, r.BirthDate, r.Phone)

	if r.Password == "" {
		errs.add("password", "password is required")
	} else if utf8.RuneCountInString(r.Password) < minPasswordLen {
		errs.add("password", "password length must be at least 6 characters")
	} else if len(r.Password) > maxPasswordBytes {
		errs.add("password", "password must be at most 72 bytes")
	}

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err == nil {
			exists, err := v.emails.EmailExists(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return errs, user.ErrEmailTaken
			}
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}

	return errs, nil
}

// ValidateUpdate applies the same field rules minus password and the
// uniqueness pre-check; on update the unique index alone guards the email.
func (v *Validator) ValidateUpdate(r dto.UpdateRequest) FieldErrors {
	errs := checkCommon(r.Name, r.Email, r.BirthDate, r.Phone)
	if len(errs) == 0 {
		return nil
	}

	return errs
}

func checkCommon(name, email, bdate, phone string) FieldErrors {
	var errs FieldErrors

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	bdate = strings.TrimSpace(bdate)
	phone = strings.TrimSpace(phone)

	if name == "" {
		errs.add("name", "name is required")
	} else if l := utf8.RuneCountInString(name); l < minNameLen || l > maxNameLen {
		errs.add("name", "name length must be 3-100 characters")
	}

	if email == "" {
		errs.add("email", "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.add("email", "invalid email format")
	}

	if bdate == "" {
		errs.add("birth_date", "birth_date is required")
	} else if dob, err := time.Parse("2006-01-02", bdate); err != nil {
		errs.add("birth_date", "must be YYYY-MM-DD")
	} else if ageAt(dob, time.Now().UTC()) < adultAge {
		errs.add("birth_date", "user must be 18+ years old")
	}

	// phone is optional
	if phone != "" && !phoneRe.MatchString(phone) {
		errs.add("phone", "must be in format (XX) XXXXX-XXXX")
	}

	return errs
}

// ageAt counts completed years: the year difference, minus one if this
// year's anniversary has not happened yet. AddDate rolls a Feb 29 birthday
// to Mar 1 in non-leap years, matching standard calendar arithmetic.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if birth.AddDate(age, 0, 0).After(now) {
		age--
	}

	return age
}

// ValidateID parses the path parameter into a user id.
func ValidateID(s string) (user.ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("user_id must be a positive integer")
	}

	return user.ID(id), nil
}
