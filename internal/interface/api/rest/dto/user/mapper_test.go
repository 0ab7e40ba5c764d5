package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainUser_TrimsNameAndPhone(t *testing.T) {
	u, err := ToDomainUser(CreateRequest{
		Name:      "  Ana Silva  ",
		Email:     "ana@example.com",
		Password:  "secret1",
		BirthDate: "2000-01-01",
		Phone:     " (11) 98888-7777 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", u.Name)
	assert.Equal(t, "(11) 98888-7777", u.Phone)
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), u.BirthDate)
}

func TestToDomainUserUpdate_TrimsNameAndPhone(t *testing.T) {
	u, err := ToDomainUserUpdate(UpdateRequest{
		Name:      "  Ana Souza  ",
		Email:     "ana@example.com",
		BirthDate: "2000-01-01",
		Phone:     " (11) 8888-7777 ",
		Active:    false,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", u.Name)
	assert.Equal(t, "(11) 8888-7777", u.Phone)
	assert.False(t, u.Active)
}

func TestToDomainUser_BadBirthDate(t *testing.T) {
	_, err := ToDomainUser(CreateRequest{BirthDate: "01/01/2000"})
	require.Error(t, err)
}
