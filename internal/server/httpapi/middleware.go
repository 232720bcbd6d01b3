package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/ratelimit"
	"github.com/instaguard/instaguard/internal/server/services"
)

const (
	ctxUser      = "user"
	ctxRequestID = "request_id"
)

// requestID propagates the caller's X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(common.RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ctxRequestID),
		)
	}
}

// authenticate resolves the bearer token to a user, or answers 401.
func (h *handler) authenticate(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeader)
	token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	if !strings.HasPrefix(header, common.BearerPrefix) {
		token = ""
	}

	user, err := h.svc.Auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		if e, ok := services.AsError(err); ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": e.Message})
			return
		}
		h.internalError(c, err)
		return
	}

	c.Set(ctxUser, user)
	c.Next()
}

// requireAdmin answers 403 with msg unless the caller is an admin.
func requireAdmin(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).Role != common.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}
		c.Next()
	}
}

// rateLimit counts requests per client IP and route. A limiter failure lets
// the request through.
func rateLimit(limiter ratelimit.Limiter, l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			l.Warn(c.Request.Context(), "rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, messageResponse{Message: services.MsgTooManyRequests})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	if u, ok := c.Get(ctxUser); ok {
		return u.(*models.User)
	}
	return &models.User{}
}
