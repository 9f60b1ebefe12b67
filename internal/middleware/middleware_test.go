package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{
			name:        "invalid credentials",
			err:         fmt.Errorf("login: %w", apperrors.ErrInvalidCredentials),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    dto.ErrorCodeInvalidCredentials,
			wantMessage: "Invalid username or password",
		},
		{
			name:       "session gone",
			err:        apperrors.ErrSessionNotFound,
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeTokenNotFound,
		},
		{
			name:       "permission denied",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:        "leave request not found",
			err:         fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrLeaveRequestNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    dto.ErrorCodeResourceNotFound,
			wantMessage: "Leave request not found",
		},
		{
			name:        "generic not found",
			err:         apperrors.ErrResourceNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    dto.ErrorCodeResourceNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "leave already decided",
			err:         fmt.Errorf("%w: %w", apperrors.ErrConflict, apperrors.ErrLeaveNotPending),
			wantStatus:  http.StatusConflict,
			wantCode:    dto.ErrorCodeConflict,
			wantMessage: "Leave request is no longer pending",
		},
		{
			name:        "validation carries its message",
			err:         apperrors.NewValidationError("End date must not be before start date", map[string]interface{}{"endDate": "x"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidationFailed,
			wantMessage: "End date must not be before start date",
		},
		{
			name:       "bad request",
			err:        fmt.Errorf("%w: unknown export type", apperrors.ErrBadRequest),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:       "cancelled",
			err:        context.Canceled,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeExternalServiceError,
		},
		{
			name:        "unexpected",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    dto.ErrorCodeInternalServer,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			detail := decodeError(t, w)
			assert.Equal(t, tt.wantCode, detail.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, detail.Message)
			}
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}

func actorFor(t *testing.T, role models.Role) *services.Actor {
	t.Helper()
	actor, err := services.NewActor("s1", models.User{ID: 7, Role: role, Name: "Test User", Department: "Physics"})
	require.NoError(t, err)
	return actor
}

func TestViewRequired(t *testing.T) {
	m := NewAuthMiddleware(nil, nil, zerolog.Nop())

	tests := []struct {
		name         string
		actor        *services.Actor
		views        []models.ViewID
		wantStatus   int
		wantFallback string
	}{
		{name: "faculty on own view", actor: actorFor(t, models.RoleFaculty), views: []models.ViewID{models.ViewLeaveRequests}, wantStatus: http.StatusOK},
		{name: "faculty on resources", actor: actorFor(t, models.RoleFaculty), views: []models.ViewID{models.ViewResources}, wantStatus: http.StatusForbidden, wantFallback: "dashboard"},
		{name: "hod on system config", actor: actorFor(t, models.RoleHOD), views: []models.ViewID{models.ViewSystemConfig}, wantStatus: http.StatusForbidden, wantFallback: "dashboard"},
		{name: "any of several views", actor: actorFor(t, models.RoleHOD), views: []models.ViewID{models.ViewResources, models.ViewTimetable}, wantStatus: http.StatusOK},
		{name: "no actor", views: []models.ViewID{models.ViewDashboard}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.actor != nil {
					c.Set(ContextActor, tt.actor)
				}
			})
			router.GET("/view", m.ViewRequired(tt.views...), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantFallback != "" {
				detail := decodeError(t, w)
				details, ok := detail.Details.(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, tt.wantFallback, details["fallbackView"])
				assert.Equal(t, string(tt.views[0]), details["view"])
			}
		})
	}
}

func TestRequireSession_MissingCredentials(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"}), nil, zerolog.Nop())
	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("cookie-secret"))))
	router.GET("/private", m.RequireSession(), func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header or cookie"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	metrics.ObserveLogin(true)
	metrics.ObserveLogin(false)
	metrics.ObserveLogin(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues("/items/:id", http.MethodGet, "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.loginAttempts.WithLabelValues("failure")))

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "schedulocity_http_request_duration_seconds")
}
