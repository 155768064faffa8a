package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_HashesPassword(t *testing.T) {
	user, err := NewUser(1, "alice", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "correct horse battery")
	require.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
	require.True(t, user.Active)

	require.True(t, user.CheckPassword("correct horse battery"))
	require.False(t, user.CheckPassword("wrong password!"))
	require.False(t, user.CheckPassword(""))
}

func TestNewUser_RejectsWeakPassword(t *testing.T) {
	_, err := NewUser(1, "alice", "short")
	require.ErrorIs(t, err, ErrWeakPassword)

	_, err = NewUser(1, "alice", "   ")
	require.ErrorIs(t, err, ErrEmptyPassword)

	_, err = NewUser(1, "  ", "correct horse battery")
	require.ErrorIs(t, err, ErrEmptyUsername)
}

func TestUpdateProfile_ValidatesEmail(t *testing.T) {
	user, err := NewUser(1, "alice", "correct horse battery")
	require.NoError(t, err)

	require.ErrorIs(t, user.UpdateProfile("Alice", "Doe", "not-an-email", ""), ErrInvalidEmail)
	require.NoError(t, user.UpdateProfile("Alice", "Doe", "alice@example.com", "1234"))
	require.Equal(t, "alice@example.com", user.Email)
}

func TestValidate_RequiresHash(t *testing.T) {
	user := &User{Username: "alice", Active: true}
	require.ErrorIs(t, user.Validate(), ErrMissingHash)
}
