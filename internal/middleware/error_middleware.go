package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/ndthanh/studentms/internal/pkg/logger"
)

// HandleAPIError translates domain errors into HTTP responses. Anything
// unclassified is logged with full detail and surfaced as a bare 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Incorrect username or password"))
	case errors.Is(err, apperrors.ErrInactiveAccount):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Inactive user"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Not enough permissions"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrClassNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Class not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrClassInUse):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cannot delete class with existing students"))
	case errors.Is(err, apperrors.ErrDuplicateClassName):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("A class with this information already exists"))
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already registered"))
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrDuplicateStudentCode):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student code already registered"))
	case errors.Is(err, apperrors.ErrDuplicateIdCard):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID card number already registered"))
	case errors.Is(err, apperrors.ErrInvalidStudentData):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("A student with this information already exists"))
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Incorrect current password"))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
