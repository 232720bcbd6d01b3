package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/server/services"
)

func (h *handler) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgUsernameRequired)
		return
	}

	res, err := h.svc.Prediction.Predict(c.Request.Context(), currentUser(c), req.Username)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, predictResponse{
		Username:   res.Username,
		Prediction: res.Prediction,
		Confidence: res.Confidence,
		Message:    res.Message,
		Note:       res.Note,
	})
}

func (h *handler) checkProfile(c *gin.Context) {
	var req featureCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidFeatures)
		return
	}

	res, err := h.svc.Prediction.CheckFeatures(c.Request.Context(), req.vector(), req.Captcha, c.ClientIP())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := featureCheckResponse{Prediction: res.Label}
	if res.Probability != nil {
		out.Probability = *res.Probability
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) profileResults(c *gin.Context) {
	list, err := h.svc.Prediction.Results(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]profileResultResponse, 0, len(list))
	for _, r := range list {
		features := r.Features
		if features == nil {
			features = map[string]float64{}
		}
		out = append(out, profileResultResponse{
			ID:           r.ID,
			UserID:       r.UserID,
			Username:     r.Username,
			Features:     features,
			Prediction:   r.Prediction,
			ModelVersion: r.ModelVersion,
			Confidence:   r.Confidence,
			Timestamp:    r.Timestamp.UnixMilli(),
			Note:         r.Note,
		})
	}
	c.JSON(http.StatusOK, out)
}
