package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-api/internal/repository"
)

const (
	codeNotFound   = "NOT_FOUND"
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL"
)

// respondError maps a service failure to a response. Only a missing user is
// reported as such; every other cause becomes an opaque 500 and the detail
// goes to the log.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found", "code": codeNotFound})
	default:
		requestID := requestIDFrom(c)
		h.logger.WithFields(logrus.Fields{
			"op":         op,
			"request_id": requestID,
		}).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "internal server error",
			"code":       codeInternal,
			"request_id": requestID,
		})
	}
}

func (h *Handler) respondBadRequest(c *gin.Context, op string, err error) {
	h.logger.WithFields(logrus.Fields{
		"op":         op,
		"request_id": requestIDFrom(c),
	}).WithError(err).Debug("rejected request body")
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeBadRequest})
}
