package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps taxonomy errors onto HTTP status codes. Anything outside
// the taxonomy is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrDuplicateEmail),
		errors.Is(err, entity.ErrAlreadyReviewed):
		return http.StatusConflict
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrRecipeNotFound),
		errors.Is(err, entity.ErrCollectionNotFound),
		errors.Is(err, entity.ErrIngredientNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrTokenInvalid),
		errors.Is(err, entity.ErrTokenExpired),
		errors.Is(err, entity.ErrTokenMalformed),
		errors.Is(err, entity.ErrUnknownSubject):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err), zap.String("path", c.FullPath()))
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	return skip, limit
}
