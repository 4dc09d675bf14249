package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/boom", func(ctx *gin.Context) {
		HandleAPIError(ctx, err)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid state", apperrors.NewInvalidStateError("cannot enroll a pending application"), http.StatusConflict, dto.ErrorCodeInvalidState},
		{"version conflict", apperrors.ErrVersionConflict, http.StatusConflict, dto.ErrorCodeVersionConflict},
		{"already exists", apperrors.ErrAdmissionAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"conflict", apperrors.ErrStudentHasAdmissions, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail},
		{"validation", apperrors.NewValidationError("gpa out of range"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"oracle down", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, "connection refused"), http.StatusBadGateway, dto.ErrorCodeOracleUnavailable},
		{"store down", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := performWithError(t, tc.err)
			assert.Equal(t, tc.status, rec.Code)

			resp := decodeError(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	rec := performWithError(t, errors.New("pq: column does not exist"))

	resp := decodeError(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	rec := performWithError(t, apperrors.NewInvalidStateError("cannot move application from pending to accepted"))

	resp := decodeError(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "cannot move application from pending to accepted", resp.Error.Message)
}

func newAuthRouter(jwtService *auth.JWTService, roleGate ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(jwtService)}, roleGate...)
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"staff_id": ctx.GetString(ContextStaffID)})
	})
	router.GET("/secure", handlers...)
	return router
}

func testToken(t *testing.T, jwtService *auth.JWTService, role models.StaffRole) string {
	t.Helper()

	token, _, err := jwtService.GenerateToken(&models.StaffAccount{
		ID:    "STAFF1",
		Email: "staff@admitflow.dev",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
	})
	router := newAuthRouter(jwtService)

	// Missing header.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secure", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Malformed header.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Basic abc")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtService, models.RoleOfficer))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "STAFF1")
}

func TestRequireRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
	})
	router := newAuthRouter(jwtService, RequireRole(models.RoleOfficer))

	// Counsellors are not officers.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtService, models.RoleCounsellor))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Officers pass.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtService, models.RoleOfficer))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Admin passes every role gate.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
