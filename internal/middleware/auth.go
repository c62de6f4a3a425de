package middleware

import (
	"net/http"
	"strconv"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/repositories"
	"skaters_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ErrorRenderer writes an error response for a request the gate cannot serve.
type ErrorRenderer func(c *gin.Context, err error)

// AuthGate lets a request through only with a valid session cookie that
// points at an existing skater. Everything else is sent to /login; a bad
// cookie is cleared on the way. A store failure is rendered with
// renderError, or as JSON when renderError is nil.
func AuthGate(codec *auth.TokenCodec, repo repositories.SkaterRepository, renderError ErrorRenderer) gin.HandlerFunc {
	if renderError == nil {
		renderError = apperrors.HandleError
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			logger.CtxInfo(ctx, "session rejected", "reason", err.Error())
			rejectSession(c)
			return
		}

		skater, err := repo.FindByID(ctx, claims.UserID)
		if err != nil {
			logger.CtxWithError(ctx, "session lookup failed", err, "skater_id", claims.UserID)
			renderError(c, apperrors.InternalError(err))
			c.Abort()
			return
		}
		if skater == nil {
			logger.CtxInfo(ctx, "session for unknown skater", "skater_id", claims.UserID)
			rejectSession(c)
			return
		}

		c.Set(skaterContextKey, skater)
		c.Request = c.Request.WithContext(
			logger.WithUserID(ctx, strconv.FormatUint(uint64(skater.ID), 10)),
		)
		c.Next()
	}
}

// AdminOnly must run after AuthGate. Anyone but the admin goes to /profile.
func AdminOnly(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		skater, ok := CurrentSkater(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !auth.IsAdmin(skater, adminEmail) {
			logger.CtxWarn(c.Request.Context(), "admin area denied", "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/profile")
			c.Abort()
			return
		}
		c.Next()
	}
}

func rejectSession(c *gin.Context) {
	ClearSessionCookie(c, c.Request.TLS != nil)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
