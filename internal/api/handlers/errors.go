package handlers

import (
	"errors"
	"net/http"

	"anchor-sim/internal/api/models"
	"anchor-sim/internal/data"
	"anchor-sim/internal/simulation"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// writeSessionError maps session and store errors to HTTP statuses.
func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, data.ErrSessionNotFound), errors.Is(err, simulation.ErrClosed):
		abortWithError(c, http.StatusNotFound, "SESSION_NOT_FOUND", err)
	case errors.Is(err, simulation.ErrInvalidConfig):
		abortWithError(c, http.StatusBadRequest, "INVALID_CONFIG", err)
	case errors.Is(err, simulation.ErrConfigLocked):
		abortWithError(c, http.StatusConflict, "CONFIG_LOCKED", err)
	case errors.Is(err, simulation.ErrAlreadyRunning):
		abortWithError(c, http.StatusConflict, "ALREADY_RUNNING", err)
	case errors.Is(err, simulation.ErrNotRunning):
		abortWithError(c, http.StatusConflict, "NOT_RUNNING", err)
	case errors.Is(err, simulation.ErrExportUnavailable):
		abortWithError(c, http.StatusConflict, "EXPORT_UNAVAILABLE", err)
	default:
		abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
