package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"motoinventory/internal/session"
)

func newRouter() (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore()
	r := gin.New()
	return r, store
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func authCookies(role string) []*http.Cookie {
	return []*http.Cookie{
		{Name: "authenticated", Value: "true"},
		{Name: "role", Value: role},
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	r, store := newRouter()
	r.GET("/motorcycles", RequireAuth(store), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := get(r, "/motorcycles")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = get(r, "/motorcycles", authCookies(session.RoleLimited)...)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyRedirectsLimitedToDashboard(t *testing.T) {
	r, store := newRouter()
	r.GET("/workers", RequireAuth(store), AdminOnly(store), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := get(r, "/workers", authCookies(session.RoleLimited)...)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = get(r, "/workers", authCookies(session.RoleAdmin)...)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	r, store := newRouter()
	r.GET("/login", RedirectIfAuthenticated(store), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := get(r, "/login", authCookies(session.RoleAdmin)...)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = get(r, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNoRouteDependsOnAuthState(t *testing.T) {
	r, store := newRouter()
	r.NoRoute(NoRoute(store))

	rec := get(r, "/nowhere")
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = get(r, "/nowhere", authCookies(session.RoleLimited)...)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	r, _ := newRouter()
	rl := NewRateLimiter(1, 2)
	r.GET("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusOK, get(r, "/login").Code)
	require.Equal(t, http.StatusOK, get(r, "/login").Code)
	require.Equal(t, http.StatusTooManyRequests, get(r, "/login").Code)
}
