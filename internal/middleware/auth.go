package middleware

import (
	"context"
	"net/http"
	"strings"

	"vokabelbuch/internal/config"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func unauthorized(message string) *model.AppError {
	return model.NewAppError("UNAUTHORIZED", message, "", model.ErrUnauthorized)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// subject のユーザーIDをコンテキストにセットします。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, unauthorized("Authorization header is required."))
				return
			}

			// "Bearer {token}"
			headerParts := strings.Fields(authHeader)
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, unauthorized("Authorization header must be in the form 'Bearer <token>'."))
				return
			}

			claims := &jwt.RegisteredClaims{}
			_, err := parser.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, unauthorized("Token is invalid or expired."))
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, unauthorized("Token does not identify a user."))
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID は認証済みユーザーIDをコンテキストにセットします。
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.UserIDKey, userID)
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアを通っていない
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Could not resolve the authenticated user.", "", model.ErrInternalServer)
	}
	return value, nil
}
