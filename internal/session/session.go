// Package session holds the console's persisted client-side state: the
// authenticated flag, the role string and the dark-theme flag. The values are
// plain unsigned cookies on purpose: the gate is demonstration-grade, has no
// server-side verification, and the backend is called with no credential
// attached.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin   = "admin"
	RoleLimited = "limited"
)

const (
	cookieAuthenticated = "authenticated"
	cookieRole          = "role"
	// cookie names cannot carry a colon, hence theme_dark not theme:dark
	cookieTheme = "theme_dark"

	// roughly a year; the flags are meant to persist indefinitely
	cookieMaxAge = 365 * 24 * 60 * 60
)

// Store is the single owner of the persisted flags. It is constructed once
// and injected wherever the flags are read or written; nothing else touches
// the cookies.
type Store struct{}

func NewStore() *Store { return &Store{} }

// Authenticated reports whether the authenticated flag is set.
func (s *Store) Authenticated(c *gin.Context) bool {
	v, err := c.Cookie(cookieAuthenticated)
	return err == nil && v == "true"
}

// Role returns the stored role string, or "" when absent.
func (s *Store) Role(c *gin.Context) string {
	v, err := c.Cookie(cookieRole)
	if err != nil {
		return ""
	}
	return v
}

// Login sets the authenticated flag and the role.
func (s *Store) Login(c *gin.Context, role string) {
	s.set(c, cookieAuthenticated, "true", cookieMaxAge)
	s.set(c, cookieRole, role, cookieMaxAge)
}

// Logout clears both stored auth values.
func (s *Store) Logout(c *gin.Context) {
	s.set(c, cookieAuthenticated, "", -1)
	s.set(c, cookieRole, "", -1)
}

// DarkTheme reports whether the dark theme flag is set.
func (s *Store) DarkTheme(c *gin.Context) bool {
	v, err := c.Cookie(cookieTheme)
	return err == nil && v == "1"
}

// ToggleTheme flips the theme flag and returns the new state.
func (s *Store) ToggleTheme(c *gin.Context) bool {
	if s.DarkTheme(c) {
		s.set(c, cookieTheme, "", -1)
		return false
	}
	s.set(c, cookieTheme, "1", cookieMaxAge)
	return true
}

func (s *Store) set(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:   name,
		Value:  value,
		Path:   "/",
		MaxAge: maxAge,
	})
}
