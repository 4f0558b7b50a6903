package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantDetail: "Incorrect username or password"},
		{name: "inactive account", err: apperrors.ErrInactiveAccount, wantStatus: http.StatusUnauthorized, wantDetail: "Inactive user"},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: http.StatusForbidden, wantDetail: "Not enough permissions"},
		{name: "student not found", err: apperrors.ErrStudentNotFound, wantStatus: http.StatusNotFound, wantDetail: "Student not found"},
		{name: "class not found", err: apperrors.ErrClassNotFound, wantStatus: http.StatusNotFound, wantDetail: "Class not found"},
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantDetail: "User not found"},
		{name: "class in use", err: apperrors.ErrClassInUse, wantStatus: http.StatusBadRequest, wantDetail: "Cannot delete class with existing students"},
		{name: "duplicate class name", err: apperrors.ErrDuplicateClassName, wantStatus: http.StatusBadRequest, wantDetail: "A class with this information already exists"},
		{name: "duplicate username", err: apperrors.ErrDuplicateUsername, wantStatus: http.StatusBadRequest, wantDetail: "Username already registered"},
		{name: "duplicate email", err: apperrors.ErrDuplicateEmail, wantStatus: http.StatusBadRequest, wantDetail: "Email already registered"},
		{name: "duplicate student code", err: apperrors.ErrDuplicateStudentCode, wantStatus: http.StatusBadRequest, wantDetail: "Student code already registered"},
		{name: "duplicate id card", err: apperrors.ErrDuplicateIdCard, wantStatus: http.StatusBadRequest, wantDetail: "ID card number already registered"},
		{name: "invalid student data", err: apperrors.ErrInvalidStudentData, wantStatus: http.StatusBadRequest, wantDetail: "A student with this information already exists"},
		{name: "incorrect current password", err: apperrors.ErrIncorrectPassword, wantStatus: http.StatusBadRequest, wantDetail: "Incorrect current password"},
		{name: "unknown error", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantDetail: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body["detail"])
		})
	}
}

func TestHandleAPIError_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, fmt.Errorf("getting student: %w", apperrors.ErrStudentNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
