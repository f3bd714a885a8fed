package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoinventory/internal/session"
)

func TestAuthenticateAllowList(t *testing.T) {
	s := NewService()

	role, err := s.Authenticate("souhail", "souhail")
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, role)

	role, err = s.Authenticate("abdo", "abdo")
	require.NoError(t, err)
	assert.Equal(t, session.RoleLimited, role)
}

func TestAuthenticateTrimsAndLowercases(t *testing.T) {
	s := NewService()

	role, err := s.Authenticate("  SouHail ", " SOUHAIL")
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, role)
}

func TestAuthenticateRejectsEverythingElse(t *testing.T) {
	s := NewService()

	for _, tc := range [][2]string{
		{"souhail", "abdo"},
		{"abdo", "souhail"},
		{"souhail", ""},
		{"", ""},
		{"admin", "admin"},
	} {
		_, err := s.Authenticate(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, "credentials %q/%q", tc[0], tc[1])
	}
}
