package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/server/services"
)

func (h *handler) submitReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgReportFields)
		return
	}

	u := currentUser(c)
	r, err := h.svc.Reports.Submit(c.Request.Context(), u, req.Username, req.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := reportMillis(*r)
	out.UserEmail = r.UserEmail
	c.JSON(http.StatusCreated, out)
}

// listReports serves the older list format with millisecond dates.
func (h *handler) listReports(c *gin.Context) {
	list, err := h.svc.Reports.Mine(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapReports(list, reportMillis))
}

func (h *handler) myReports(c *gin.Context) {
	list, err := h.svc.Reports.Mine(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapReports(list, reportISO))
}

func (h *handler) allReports(c *gin.Context) {
	list, err := h.svc.Reports.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapReports(list, reportISO))
}

func (h *handler) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgImpressionRequired)
		return
	}

	if err := h.svc.Feedback.Submit(c.Request.Context(), currentUser(c), req.Impression, req.Feedback); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "Feedback submitted successfully"})
}

func (h *handler) listFeedback(c *gin.Context) {
	list, err := h.svc.Feedback.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := feedbackListResponse{Feedback: make([]feedbackResponse, 0, len(list))}
	for _, f := range list {
		out.Feedback = append(out.Feedback, feedbackResponse{
			ID:         f.ID,
			Name:       f.Name,
			Email:      f.Email,
			Impression: f.Impression,
			Feedback:   f.Comment,
			Timestamp:  iso(f.Timestamp),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgContactFields)
		return
	}

	if err := h.svc.Contact.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Message sent successfully!"})
}
