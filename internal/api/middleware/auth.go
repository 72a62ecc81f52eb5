package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
)

type userIDCtxKey struct{}

// HeaderUserID демо-аутентификация: личность гостя передаётся заголовком.
// Реальная аутентификация сознательно вне рамок сервиса.
const HeaderUserID = "X-User-ID"

// Auth middleware требует валидный X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header must be a positive integer")
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), userIDCtxKey{}, userID),
		))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDCtxKey{}).(int64)
	return id, ok
}
