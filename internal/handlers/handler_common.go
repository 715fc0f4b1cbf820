package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestScope returns the owner whose records the request acts on and the
// user making it. It answers 401 itself when either is missing.
func requestScope(c *gin.Context, logger *slog.Logger) (ownerID, userID string, ok bool) {
	ownerID, okOwner := middleware.GetOwnerIDFromContext(c)
	userID, okUser := middleware.GetUserIDFromContext(c)
	if !okOwner || !okUser {
		logger.Error("Owner or user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return ownerID, userID, true
}

// errorStatus maps a service error onto an HTTP status.
func errorStatus(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &appErr) && appErr.Code >= 400:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error. Client errors carry the message;
// server errors only say which action failed.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}
	logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
