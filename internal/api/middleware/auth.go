package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с ID пользователя, проставляется API-гейтвеем
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие и корректность заголовка X-User-ID
// и кладёт ID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			respondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
