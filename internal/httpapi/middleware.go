package httpapi

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/errs"
)

// Context keys shared by the middleware chain.
const (
	ctxRequestID = "request_id"
	ctxUserID    = "user_id"
	ctxLogger    = "logger"
)

// requestID assigns each request a uuid, honoring an inbound X-Request-ID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Set(ctxLogger, s.log.With(zap.String("request_id", id)))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// identity resolves the caller from X-User-ID. Real authentication sits in
// front of this service; the header is the verified principal it forwards.
func (s *Server) identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if uid == "" {
			fail(c, errs.E(errs.Auth, "MISSING_IDENTITY", "X-User-ID header is required"))
			return
		}
		c.Set(ctxUserID, uid)
		c.Next()
	}
}

func (s *Server) adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.admins[c.GetString(ctxUserID)] {
			fail(c, errs.E(errs.Auth, "ADMIN_ONLY", "caller is not an admin"))
			return
		}
		c.Next()
	}
}

// cronAuth guards the scheduled-job endpoints with the shared secret.
func (s *Server) cronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.CronSecret == "" {
			fail(c, errs.E(errs.Auth, "CRON_DISABLED", "no cron secret configured"))
			return
		}
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.CronSecret)) != 1 {
			fail(c, errs.E(errs.Auth, "BAD_CRON_SECRET", "invalid cron credential"))
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
