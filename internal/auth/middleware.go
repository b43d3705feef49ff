package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/spendwise/spendwise/internal/user"
)

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "error",
		"code":    status,
		"message": message,
	})
}

// JWTAccessTokenMiddleware authenticates requests with a Bearer access token
// and puts the authenticated user's id on the request context.
func JWTAccessTokenMiddleware(jwtManager *JWTManager, users user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				writeJSONError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			userID, err := jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					writeJSONError(w, http.StatusUnauthorized, "Access token expired")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "Invalid access token")
				return
			}

			exists, err := users.UserExists(userID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !exists {
				writeJSONError(w, http.StatusUnauthorized, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
