package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/models"
	"skaters_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenRepo struct {
	repositories.SkaterRepository
}

func (brokenRepo) FindByID(context.Context, uint) (*models.Skater, error) {
	return nil, errors.New("store is down")
}

type gateFixture struct {
	router *gin.Engine
	codec  *auth.TokenCodec
	repo   *repositories.MemorySkaterRepository
}

func newGateFixture(t *testing.T, repo repositories.SkaterRepository) *gateFixture {
	t.Helper()

	mem := repositories.NewMemorySkaterRepository()
	if repo == nil {
		repo = mem
	}
	codec := auth.NewTokenCodec([]byte("test-secret"), time.Hour)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	private := router.Group("", AuthGate(codec, repo, nil))
	private.GET("/profile", func(c *gin.Context) {
		skater, ok := CurrentSkater(c)
		require.True(t, ok)
		c.String(http.StatusOK, "hello %s uid=%s", skater.Name, logger.GetUserID(c.Request.Context()))
	})
	admin := router.Group("/admin", AuthGate(codec, repo, nil), AdminOnly("admin@gmail.com"))
	admin.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "admin area")
	})

	return &gateFixture{router: router, codec: codec, repo: mem}
}

func (f *gateFixture) createSkater(t *testing.T, email string) *models.Skater {
	t.Helper()
	s := &models.Skater{Email: email, Name: "Ana", PasswordHash: "hash"}
	require.NoError(t, f.repo.Create(context.Background(), s))
	return s
}

func (f *gateFixture) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func clearedCookie(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestAuthGate(t *testing.T) {
	t.Parallel()
	f := newGateFixture(t, nil)
	ana := f.createSkater(t, "ana@example.com")

	t.Run("no cookie redirects to login", func(t *testing.T) {
		w := f.get("/profile", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.False(t, clearedCookie(w))
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		token, err := f.codec.Issue(ana.ID, ana.Email)
		require.NoError(t, err)

		w := f.get("/profile", sessionCookie(token))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello Ana uid=1", w.Body.String())
	})

	t.Run("garbage token is cleared", func(t *testing.T) {
		w := f.get("/profile", sessionCookie("garbage"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.True(t, clearedCookie(w))
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		past := f.codec.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		token, err := past.Issue(ana.ID, ana.Email)
		require.NoError(t, err)

		w := f.get("/profile", sessionCookie(token))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.True(t, clearedCookie(w))
	})

	t.Run("token for a deleted skater is cleared", func(t *testing.T) {
		token, err := f.codec.Issue(999, "ghost@example.com")
		require.NoError(t, err)

		w := f.get("/profile", sessionCookie(token))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.True(t, clearedCookie(w))
	})
}

func TestAuthGate_StoreFailure(t *testing.T) {
	t.Parallel()
	f := newGateFixture(t, brokenRepo{})

	token, err := f.codec.Issue(1, "ana@example.com")
	require.NoError(t, err)

	w := f.get("/profile", sessionCookie(token))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "store is down")
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()
	f := newGateFixture(t, nil)
	ana := f.createSkater(t, "ana@example.com")
	admin := f.createSkater(t, "admin@gmail.com")

	t.Run("regular skater goes to profile", func(t *testing.T) {
		token, err := f.codec.Issue(ana.ID, ana.Email)
		require.NoError(t, err)

		w := f.get("/admin", sessionCookie(token))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/profile", w.Header().Get("Location"))
	})

	t.Run("admin gets in", func(t *testing.T) {
		token, err := f.codec.Issue(admin.ID, admin.Email)
		require.NoError(t, err)

		w := f.get("/admin", sessionCookie(token))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin area", w.Body.String())
	})

	t.Run("anonymous goes to login", func(t *testing.T) {
		w := f.get("/admin", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}
