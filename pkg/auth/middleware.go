package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

type ContextKey string

const UserIDKey ContextKey = "userID"

// AdminChecker reports whether a user may use the admin API.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// AuthMiddleware accepts requests carrying a valid bearer token and stores the user id in the
// request context under UserIDKey.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware must run after AuthMiddleware. The role is read on every request so a demoted
// admin loses access without waiting for the token to expire.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(UserIDKey).(int64)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				zap.L().Error("can't check admin role", zap.Int64("user_id", userID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !isAdmin {
				utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
