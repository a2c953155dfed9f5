package api

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps a core error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError aborts with the mapped status. Internal errors are logged and hidden.
func respondError(c *gin.Context, err error, fallback string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log := logger.For("http")
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
		abortWithError(c, code, fallback)
		return
	}
	abortWithError(c, code, err.Error())
}
