package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"romancalc/internal/domain"
	"romancalc/internal/logger"
)

// SessionCookie is the cookie carrying the signed session ID.
const SessionCookie = "romancalc_session"

const sessionKey = "session"

// requestLogger records method, path, status, bytes and duration per request.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote", c.ClientIP(),
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
		)
	}
}

// sessionMiddleware resolves the caller's session ID from the signed cookie,
// issuing a fresh one when it is absent or invalid.
func sessionMiddleware(signer *cookieSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if v, err := c.Cookie(SessionCookie); err == nil {
			id, _ = signer.Verify(v)
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    signer.Sign(id),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
			})
		}
		c.Set(sessionKey, domain.SessionID(id))
		c.Next()
	}
}

func sessionID(c *gin.Context) domain.SessionID {
	return c.MustGet(sessionKey).(domain.SessionID)
}
