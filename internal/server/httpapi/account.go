package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/server/services"
)

func (h *handler) userInfo(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, userInfoResponse{FullName: u.FullName, Email: u.Email, Role: u.Role})
}

func (h *handler) profile(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, profileResponse{FullName: u.FullName, Email: u.Email})
}

func (h *handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgCaptchaRequired)
		return
	}

	err := h.svc.Account.UpdateProfile(c.Request.Context(), currentUser(c), req.FullName, req.Password, req.Captcha, c.ClientIP())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully."})
}

func (h *handler) history(c *gin.Context) {
	list, err := h.svc.Account.History(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := historyResponse{History: make([]activityResponse, 0, len(list))}
	for _, a := range list {
		out.History = append(out.History, activityResponse{
			Action:    a.Action,
			Timestamp: a.Timestamp.UnixMilli(),
			Details:   a.Details,
		})
	}
	c.JSON(http.StatusOK, out)
}

// updatePassword answers {success, message} on every outcome it owns.
func (h *handler) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, updatePasswordResponse{Message: services.MsgPasswordFields})
		return
	}

	err := h.svc.Account.UpdatePassword(c.Request.Context(), currentUser(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if e, ok := services.AsError(err); ok {
			c.JSON(statusOf(e.Kind), updatePasswordResponse{Message: e.Message})
			return
		}
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatePasswordResponse{Success: true, Message: "Password updated successfully"})
}
