package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/borhan98/UniFood-Server/internal/db"
	"github.com/borhan98/UniFood-Server/internal/domain"
	"github.com/borhan98/UniFood-Server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAdminGateRouter(t *testing.T, store db.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuthMiddleware(testSecret), AdminOnlyMiddleware(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, "", testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAdminGate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token is 401, never 403", func(t *testing.T) {
		r := newAdminGateRouter(t, db.NewMemory())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized access")
	})

	t.Run("malformed scheme is 401", func(t *testing.T) {
		r := newAdminGateRouter(t, db.NewMemory())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Token abc") // Wrong scheme
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		r := newAdminGateRouter(t, db.NewMemory())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token but non-admin role is 403", func(t *testing.T) {
		store := db.NewMemory()
		_, err := store.Users().InsertOne(ctx, domain.User{Email: "u@x.com", Role: domain.RoleUser})
		require.NoError(t, err)

		r := newAdminGateRouter(t, store)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", bearerFor(t, "u@x.com"))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden access")
	})

	t.Run("valid token with no stored user is 403", func(t *testing.T) {
		r := newAdminGateRouter(t, db.NewMemory())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", bearerFor(t, "ghost@x.com"))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		store := db.NewMemory()
		_, err := store.Users().InsertOne(ctx, domain.User{Email: "boss@x.com", Role: domain.RoleAdmin})
		require.NoError(t, err)

		r := newAdminGateRouter(t, store)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", bearerFor(t, "boss@x.com"))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin gate without authentication fails closed as 401", func(t *testing.T) {
		// Miswired chain: AdminOnlyMiddleware with no JWTAuthMiddleware before it
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/broken", AdminOnlyMiddleware(db.NewMemory()), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/broken", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSelfOnly(t *testing.T) {
	newRouter := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/mine/:email", JWTAuthMiddleware(testSecret), SelfOnlyMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	t.Run("matching email passes", func(t *testing.T) {
		r := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mine/a@x.com", nil)
		req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mismatched email is 403", func(t *testing.T) {
		r := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mine/b@x.com", nil)
		req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden access")
	})

	t.Run("no token is 401 before any comparison", func(t *testing.T) {
		r := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mine/a@x.com", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
