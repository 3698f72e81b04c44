package auth

import (
	"encoding/json"
	"net/http"
)

// Middleware reads the identity headers injected by the API gateway after it
// has verified the JWT. Requests without a company id never reach a usecase.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := r.Header.Get("X-Company-ID")
		if companyID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "unauthorized",
				"message": "missing company identity",
			})
			return
		}

		ctx := WithCompanyID(r.Context(), companyID)
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			ctx = WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
