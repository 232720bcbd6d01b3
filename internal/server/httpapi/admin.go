package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/services"
)

func (h *handler) listUsers(c *gin.Context) {
	list, err := h.svc.Admin.Users(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := usersResponse{Users: make([]models.UserView, 0, len(list))}
	for i := range list {
		out.Users = append(out.Users, list[i].View())
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) deleteUser(c *gin.Context) {
	var uri deleteUserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusNotFound, messageResponse{Message: services.MsgUserNotFound})
		return
	}

	if err := h.svc.Admin.DeleteUser(c.Request.Context(), uri.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully!"})
}

func (h *handler) analytics(c *gin.Context) {
	a, err := h.svc.Admin.Analytics(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "analytics", "error", err)
		c.JSON(http.StatusForbidden, gin.H{"error": services.MsgAdminRequired})
		return
	}

	out := analyticsResponse{
		TotalUsers:     a.TotalUsers,
		VerifiedUsers:  a.VerifiedUsers,
		TotalReports:   a.TotalReports,
		PendingReports: a.PendingReports,
		RecentUsers:    make([]recentUserResponse, 0, len(a.RecentUsers)),
	}
	for _, u := range a.RecentUsers {
		out.RecentUsers = append(out.RecentUsers, recentUserResponse{
			ID:         u.ID,
			FullName:   u.FullName,
			Email:      u.Email,
			Mobile:     u.Mobile,
			IsVerified: u.IsVerified,
			CreatedAt:  u.CreatedAt.UTC().Format(minuteLayout),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) recentActivities(c *gin.Context) {
	list, err := h.svc.Admin.RecentActivities(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "recent activities", "error", err)
		c.JSON(http.StatusForbidden, gin.H{"error": services.MsgAdminRequired})
		return
	}

	out := recentActivitiesResponse{Activities: make([]recentActivityResponse, 0, len(list))}
	for _, a := range list {
		out.Activities = append(out.Activities, recentActivityResponse{
			Description: a.Description,
			Timestamp:   a.Timestamp.UTC().Format(minuteLayout),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) settings(c *gin.Context) {
	st, err := h.svc.Admin.Settings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgSettingsMissing)
		return
	}

	changed, err := h.svc.Admin.UpdateSettings(c.Request.Context(), models.Settings{
		SiteName:        req.SiteName,
		SupportEmail:    req.SupportEmail,
		NotifyReports:   req.NotifyReports,
		MaintenanceMode: req.MaintenanceMode,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	msg := "No changes made"
	if changed {
		msg = "Settings updated successfully"
	}
	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *handler) export(c *gin.Context) {
	var uri exportURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, services.MsgUnknownExport)
		return
	}

	link, err := h.svc.Export.Export(c.Request.Context(), uri.Kind)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "export created", "kind", uri.Kind, "key", link.Key, "by", currentUser(c).Email)
	c.JSON(http.StatusOK, exportResponse{Key: link.Key, URL: link.URL, ExpiresAt: link.ExpiresAt})
}
