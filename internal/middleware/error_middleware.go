package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var details interface{}
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil {
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// One message for unknown users and wrong passwords alike
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid username or password", nil)
	case errors.Is(err, apperrors.ErrSessionNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Session expired or signed out", nil)
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", nil)
	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token", nil)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied", details)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, notFoundMessage(err), details)
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, conflictMessage(err), details)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, validationMessage(err, custom), details)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request", err.Error())
	case errors.Is(err, apperrors.ErrUnknownRole):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Unknown role", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "Request cancelled", nil)
	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

// HandleBindingError answers 400 with one detail per invalid field
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string, details interface{}) {
	errorDetail := dto.NewErrorDetail(code, message)
	if details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}
	if status >= http.StatusInternalServerError {
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityCritical)
	}
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrResourceItemNotFound,
		apperrors.ErrLeaveRequestNotFound,
		apperrors.ErrBackupNotFound,
	} {
		if errors.Is(err, target) {
			msg := target.Error()
			return strings.ToUpper(msg[:1]) + msg[1:]
		}
	}
	return "Resource not found"
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrLeaveNotPending):
		return "Leave request is no longer pending"
	case errors.Is(err, apperrors.ErrReadOnlyStore):
		return "The data store is read-only"
	}
	return "Conflict"
}

func validationMessage(err error, custom *apperrors.CustomError) string {
	if custom != nil && custom.Message != "" {
		return custom.Message
	}
	return "Validation failed"
}
