// Package httpapi is the JSON-over-HTTP surface of the backend, served with
// gin. Routes, bodies and messages follow what the web and terminal clients
// expect.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/ratelimit"
	"github.com/instaguard/instaguard/internal/server/services"
)

type handler struct {
	svc    Services
	logger logging.Logger
}

// NewRouter wires every route. corsOrigin is the one browser origin allowed
// to call with credentials.
func NewRouter(svc Services, limiter ratelimit.Limiter, corsOrigin string, l logging.Logger) *gin.Engine {
	h := &handler{svc: svc, logger: l}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(l))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", common.AuthorizationHeader, common.RequestIDHeader},
		ExposeHeaders:    []string{common.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limited := rateLimit(limiter, l)

	r.GET("/healthz", h.health)
	r.POST("/login", limited, h.login)
	r.POST("/signup", limited, h.signup)
	r.POST("/google-signin", limited, h.googleSignIn)
	r.GET("/verify-email/:token", h.verifyEmail)
	r.POST("/check-instagram-profile", limited, h.checkProfile)
	r.POST("/contact", h.contact)

	authed := r.Group("/", h.authenticate)
	{
		authed.GET("/api/user-info", h.userInfo)
		authed.PUT("/api/update-password", h.updatePassword)
		authed.GET("/user/profile", h.profile)
		authed.PUT("/user/profile", h.updateProfile)
		authed.GET("/user/history", h.history)

		authed.POST("/reports", h.submitReport)
		authed.GET("/reports", h.listReports)
		authed.GET("/my-reports", h.myReports)
		authed.POST("/feedback", h.submitFeedback)
		authed.POST("/predict", limited, h.predict)

		authed.GET("/admin-reports", requireAdmin(services.MsgAdminRequired), h.allReports)
		authed.GET("/admin/profile-results", requireAdmin(services.MsgResultsAdminOnly), h.profileResults)
		authed.GET("/api/admin/feedback", requireAdmin(services.MsgFeedbackAdminOnly), h.listFeedback)

		users := authed.Group("/", requireAdmin(services.MsgPermissionDenied))
		users.GET("/api/admin/users", h.listUsers)
		users.GET("/api/get-all-users", h.listUsers)
		users.DELETE("/api/delete-user/:id", h.deleteUser)

		admin := authed.Group("/api/admin", requireAdmin(services.MsgAdminRequired))
		admin.GET("/analytics", h.analytics)
		admin.GET("/recent-activities", h.recentActivities)
		admin.GET("/settings", h.settings)
		admin.POST("/settings", h.updateSettings)
		admin.POST("/export/:kind", h.export)
	}

	return r
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
