package middleware

import (
	"net/http"
	"time"

	"skaters_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName holds the signed session token.
	SessionCookieName = "token"

	skaterContextKey = "skater"
)

// SetSessionCookie stores token in an HTTP-only cookie that lives as long as the token.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie tells the client to drop the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// CurrentSkater returns the skater loaded by AuthGate.
func CurrentSkater(c *gin.Context) (*models.Skater, bool) {
	v, ok := c.Get(skaterContextKey)
	if !ok {
		return nil, false
	}
	skater, ok := v.(*models.Skater)
	return skater, ok && skater != nil
}
