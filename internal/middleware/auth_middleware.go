package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/juancarlosvazquez23-del/Escudero/internal/auth"
)

// AdminAuth gates a route behind a valid admin bearer token. On success the
// admin username is placed in the request context under "admin".
func AdminAuth(tokens *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				rejectJSON(w, http.StatusUnauthorized, "Token requerido")
				return
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				rejectJSON(w, http.StatusForbidden, "Token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), "admin", claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
