package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ConditionalRateLimit applies the API key limiter to requests authenticated
// with the superadmin key and the normal limiter to everything else.
func (m *Middlewares) ConditionalRateLimit(normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		normal := normalLimiter(next)
		apiKey := apiKeyLimiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool); ok && apiKeyAuth {
				apiKey.ServeHTTP(w, r)
				return
			}
			normal.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) CreateRateLimiters() (normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) {
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	apiKeyLimiter = httprate.LimitByIP(m.InternalConfig.App.SuperadminAPIKeyRateLimit, time.Second)
	return normalLimiter, apiKeyLimiter
}
