package httpt

import (
	"net/http"
	"strings"
	"time"

	"tireshop/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _bearerPrefix = "Bearer "

func (h *Handler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := h.log.GenerateRequestID()
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *Handler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > 200*time.Millisecond {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

// requireRole is the authentication gate. Each request is authenticated
// independently from its bearer token; no session state is kept. A missing
// or invalid token aborts with 401, a valid token with the wrong role
// claim with 403.
func (h *Handler) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, _bearerPrefix) {
			h.abortAuth(c, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
			return
		}

		claims, err := h.tokens.Verify(strings.TrimPrefix(header, _bearerPrefix))
		if err != nil {
			h.abortAuth(c, http.StatusUnauthorized, "Unauthorized", "token rejected")
			return
		}

		if claims.Role != role {
			h.abortAuth(c, http.StatusForbidden, "Forbidden", "role mismatch")
			return
		}

		c.Set("auth_subject", claims.Subject)
		c.Next()
	}
}

func (h *Handler) abortAuth(c *gin.Context, status int, message, reason string) {
	h.log.Ctx(c.Request.Context()).LogAttrs(c.Request.Context(), logger.WarnLevel,
		"request rejected by auth gate",
		logger.String("path", c.Request.URL.Path),
		logger.String("reason", reason),
		logger.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}
