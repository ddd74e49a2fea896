package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) SaveAccessToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *mockTokenStore) SaveRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *mockTokenStore) AccessTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenStore) RefreshTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenStore) DeleteAccessToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func (m *mockTokenStore) DeleteRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Error.Code
}

func TestAuthenticate(t *testing.T) {
	jwtService := testJWTService()
	userID := uuid.New()

	accessToken, tokenID, err := jwtService.GenerateAccessToken(userID, "ana@example.com", entity.RoleMedico)
	require.NoError(t, err)
	refreshToken, _, err := jwtService.GenerateRefreshToken(userID, "ana@example.com", entity.RoleMedico)
	require.NoError(t, err)

	otherService := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: 15 * time.Minute})
	foreignToken, _, err := otherService.GenerateAccessToken(userID, "ana@example.com", entity.RoleMedico)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		storeValid bool
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", true, http.StatusUnauthorized, "AUTH_MISSING_TOKEN"},
		{"malformed header", "Token " + accessToken, true, http.StatusUnauthorized, "AUTH_INVALID_TOKEN"},
		{"wrong signature", "Bearer " + foreignToken, true, http.StatusUnauthorized, "AUTH_INVALID_TOKEN"},
		{"refresh token rejected", "Bearer " + refreshToken, true, http.StatusUnauthorized, "AUTH_INVALID_TOKEN"},
		{"revoked token", "Bearer " + accessToken, false, http.StatusUnauthorized, "AUTH_INVALID_TOKEN"},
		{"valid token", "Bearer " + accessToken, true, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStore := new(mockTokenStore)
			tokenStore.On("AccessTokenValid", mock.Anything, userID, tokenID).Return(tt.storeValid, nil).Maybe()
			m := NewAuthMiddleware(jwtService, tokenStore)

			var gotCtx context.Context
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCtx = r.Context()
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/consultas", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec.Body.Bytes()))
			} else {
				gotUserID, ok := GetUserIDFromContext(gotCtx)
				require.True(t, ok)
				assert.Equal(t, userID, gotUserID)

				gotRole, ok := GetRoleFromContext(gotCtx)
				require.True(t, ok)
				assert.Equal(t, entity.RoleMedico, gotRole)

				gotTokenID, ok := GetTokenIDFromContext(gotCtx)
				require.True(t, ok)
				assert.Equal(t, tokenID, gotTokenID)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireRoles(entity.RoleAdmin, entity.RoleAtendente)(next)

	tests := []struct {
		name       string
		role       entity.Role
		wantStatus int
	}{
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"attendant allowed", entity.RoleAtendente, http.StatusOK},
		{"patient denied", entity.RolePaciente, http.StatusForbidden},
		{"doctor denied", entity.RoleMedico, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), RoleKey, tt.role)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			gate.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRolesWithoutAuthentication(t *testing.T) {
	gate := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
