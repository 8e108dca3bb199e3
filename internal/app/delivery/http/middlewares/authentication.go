package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a session and stores it in the
// request context. Every authorization decision downstream reads that session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))

		session, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}
