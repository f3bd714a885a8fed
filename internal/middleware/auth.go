package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/session"
)

// RequireAuth gates every route except login and the catch-all: without the
// authenticated flag the browser is sent back to the login page.
func RequireAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Authenticated(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole additionally demands a specific role; a mismatch lands on the
// dashboard rather than an error page.
func RequireRole(store *session.Store, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Role(c) != requiredRole {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly protects the workers, deadlines and expenses routes from the
// limited role.
func AdminOnly(store *session.Store) gin.HandlerFunc {
	return RequireRole(store, session.RoleAdmin)
}

// RedirectIfAuthenticated keeps an already signed-in user away from the login
// page.
func RedirectIfAuthenticated(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Authenticated(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// NoRoute handles unmatched paths: the dashboard when authenticated, the
// login page otherwise.
func NoRoute(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Authenticated(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	}
}
