package auth

import (
	"strings"

	"motoinventory/internal/session"
)

// The console ships with a fixed two-account allow-list and nothing else: no
// hashing, no server-side session, no credential on backend calls. A
// demonstration-grade scheme, kept deliberately.
type account struct {
	username string
	password string
	role     string
}

var allowList = []account{
	{username: "souhail", password: "souhail", role: session.RoleAdmin},
	{username: "abdo", password: "abdo", role: session.RoleLimited},
}

// Service checks submitted credentials against the allow-list.
type Service struct {
	accounts []account
}

func NewService() *Service {
	return &Service{accounts: allowList}
}

// Authenticate compares both fields case-insensitively after trimming and
// returns the matched account's role.
func (s *Service) Authenticate(username, password string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(username))
	p := strings.ToLower(strings.TrimSpace(password))

	for _, a := range s.accounts {
		if a.username == u && a.password == p {
			return a.role, nil
		}
	}
	return "", ErrInvalidCredentials
}
