package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRegistration() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "analytical1",
		PasswordConfirm: "analytical1",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validRegistration().Validate())
	})

	t.Run("password mismatch", func(t *testing.T) {
		r := validRegistration()
		r.PasswordConfirm = "different1"
		require.ErrorIs(t, r.Validate(), ErrPasswordMismatch)
	})

	t.Run("weak password", func(t *testing.T) {
		r := validRegistration()
		r.Password = "short"
		r.PasswordConfirm = "short"
		require.Error(t, r.Validate())
	})

	t.Run("password needs a digit", func(t *testing.T) {
		r := validRegistration()
		r.Password = "lettersonly"
		r.PasswordConfirm = "lettersonly"
		require.Error(t, r.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		r := validRegistration()
		r.Email = "not-an-email"
		require.Error(t, r.Validate())
	})

	t.Run("username with spaces", func(t *testing.T) {
		r := validRegistration()
		r.Username = "ada lovelace"
		require.Error(t, r.Validate())
	})
}

func TestLoginRequestValidate(t *testing.T) {
	require.NoError(t, LoginRequest{Username: "ada", Password: "x"}.Validate())
	require.Error(t, LoginRequest{Username: "", Password: "x"}.Validate())
	require.Error(t, LoginRequest{Username: "ada", Password: ""}.Validate())
}
