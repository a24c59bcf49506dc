package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
)

// UserIDHeader names the request header selecting the acting user.
const UserIDHeader = "X-User-ID"

// UserID resolves the acting user from the X-User-ID header, falling back to
// defaultUserID, and stores it in the request context.
func UserID(defaultUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				userID = defaultUserID
			}

			ctx := shared.WithUserID(r.Context(), userID)
			log := logger.FromContext(ctx).With(slog.String("user_id", userID))
			ctx = logger.WithLogger(ctx, log)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
