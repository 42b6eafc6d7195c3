package api

import (
	"errors"
	"net/http"

	"order-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// statusFromErr maps the error taxonomy onto HTTP status codes. Handlers
// switch on well-known usecase sentinels first for friendlier messages and
// fall back to this mapping.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, errs.ErrArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyInUse), errors.Is(err, errs.ErrAlreadyLocked):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, errs.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFromErr(err)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}
