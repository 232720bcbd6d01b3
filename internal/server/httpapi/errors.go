package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/services"
)

// statusOf maps a service error kind to its HTTP status.
func statusOf(kind error) int {
	switch {
	case errors.Is(kind, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(kind, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(kind, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(kind, common.ErrorAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err. Service errors carry their own message; anything else
// is logged and answered with a generic 500.
func (h *handler) fail(c *gin.Context, err error) {
	if e, ok := services.AsError(err); ok {
		c.JSON(statusOf(e.Kind), messageResponse{Message: e.Message})
		return
	}
	h.internalError(c, err)
}

func (h *handler) internalError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "request failed",
		"path", c.FullPath(),
		"request_id", c.GetString(ctxRequestID),
		"error", err,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, messageResponse{Message: services.MsgInternalServerError})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, messageResponse{Message: msg})
}
