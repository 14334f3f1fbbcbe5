//go:build unit

package user_test

import (
	"testing"

	"storebook/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email OK", input: "kim@example.com"},
		{name: "empty NG", input: "", errIs: user.ErrInvalidEmail},
		{name: "no at sign NG", input: "kimexample.com", errIs: user.ErrInvalidEmail},
		{name: "no domain NG", input: "kim@", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.input, email.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "hyphenated number OK", input: "010-1234-5678"},
		{name: "digits only OK", input: "01012345678"},
		{name: "ten digit number OK", input: "010-123-4567"},
		{name: "too short NG", input: "010-12", errIs: user.ErrInvalidPhone},
		{name: "too long NG", input: "010-12345-56789", errIs: user.ErrInvalidPhone},
		{name: "hyphen run NG", input: "1------", errIs: user.ErrInvalidPhone},
		{name: "letters NG", input: "010-abcd-5678", errIs: user.ErrInvalidPhone},
		{name: "empty NG", input: "", errIs: user.ErrInvalidPhone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phone, err := user.NewPhone(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.input, phone.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "customer OK", input: "customer"},
		{name: "merchant OK", input: "merchant"},
		{name: "admin NG", input: "admin", errIs: user.ErrInvalidRole},
		{name: "empty NG", input: "", errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := user.NewRole(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.input, role.String())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("eight chars OK", func(t *testing.T) {
		_, err := user.NewPassword("secret12")
		assert.NoError(t, err)
	})

	t.Run("seven chars NG", func(t *testing.T) {
		_, err := user.NewPassword("secret1")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
