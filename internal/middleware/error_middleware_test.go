package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"resource not found", apperrors.ErrResourceNotFound, http.StatusNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"work item not found", apperrors.ErrWorkItemNotFound, http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"not record author", apperrors.ErrNotRecordAuthor, http.StatusForbidden},
		{"achievement locked", apperrors.ErrAchievementVerified, http.StatusForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"nisn taken", apperrors.ErrNISNAlreadyExists, http.StatusConflict},
		{"homeroom taken", apperrors.ErrHomeroomTaken, http.StatusConflict},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"storage failure", apperrors.ErrStorageFailure, http.StatusBadGateway},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"date in future", apperrors.ErrDateInFuture, http.StatusBadRequest},
		{"no homeroom assigned", apperrors.ErrNoHomeroomAssigned, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			HandleAPIError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedErrors(t *testing.T) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	wrapped := fmt.Errorf("student 42: %w", apperrors.ErrStudentNotFound)
	HandleAPIError(ctx, wrapped)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "student 42")
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	HandleAPIError(ctx, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}
