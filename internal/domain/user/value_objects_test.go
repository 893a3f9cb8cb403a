//go:build unit

package user_test

import (
	"testing"

	"booking-system/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid", input: "user@example.com", want: "user@example.com"},
		{name: "valid with plus tag", input: "user+tag@example.com", want: "user+tag@example.com"},
		{name: "trims surrounding whitespace", input: "  user@example.com  ", want: "user@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "no at sign", input: "userexample.com", errIs: user.ErrInvalidEmail},
		{name: "no tld", input: "user@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	userRole, err := user.NewRole("user")
	require.NoError(t, err)
	assert.False(t, userRole.IsAdmin())

	adminRole, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, adminRole.IsAdmin())

	for _, invalid := range []string{"", "superuser", "Admin"} {
		_, err := user.NewRole(invalid)
		assert.ErrorIs(t, err, user.ErrInvalidRole, "role %q", invalid)
	}
}

func TestNewName(t *testing.T) {
	name, err := user.NewName("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name.Value())

	_, err = user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrEmptyName)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("password")
	assert.NoError(t, err)

	_, err = user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}
