package middleware

import (
	"net/http"
	"strings"

	"github.com/iho/fiscledger/internal/usecase"
)

// UserIDHeader carries the acting user, set by the gateway in front of the API.
const UserIDHeader = "X-User-ID"

const maxUserIDLength = 128

// Identity puts the X-User-ID header value into the request context.
// Requests without the header act as usecase.SystemUser.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if len(userID) > maxUserIDLength {
			writeJSONError(w, http.StatusBadRequest, "user id too long")
			return
		}

		if userID != "" {
			r = r.WithContext(usecase.WithUserID(r.Context(), userID))
		}

		next.ServeHTTP(w, r)
	})
}
