package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vokabelbuch/internal/config"
	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

// echoUser はコンテキストのユーザーIDをそのまま返すハンドラ
func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(userID.String()))
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	handler := middleware.JWTAuthMiddleware(cfg)(echoUser(t))

	userID := uuid.New()
	valid := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Valid token", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusOK},
		{"Lower-case scheme", "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusOK},
		{"Missing header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"Wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), valid), http.StatusUnauthorized},
		{"Other HMAC algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid), http.StatusUnauthorized},
		{"Expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}), http.StatusUnauthorized},
		{"No expiry", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: userID.String(),
		}), http.StatusUnauthorized},
		{"Subject is not a UUID", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject:   "anna",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}), http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/words", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rr.Body.String())
				return
			}
			var errResp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
			assert.Equal(t, "UNAUTHORIZED", errResp.Error.Code)
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	handler := middleware.DevUserContextMiddleware(echoUser(t))
	userID := uuid.New()

	t.Run("Header accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID.String(), rr.Body.String())
	})

	for _, value := range []string{"", "not-a-uuid"} {
		t.Run("Rejected "+value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if value != "" {
				req.Header.Set("X-User-ID", value)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := middleware.GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrInternalServer)
}
