package middlewares

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireSuperadminAPIKey(t *testing.T) {
	testAPIKey := "test-superadmin-api-key-12345"
	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{SuperadminAPIKey: testAPIKey},
		},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool)
		assert.True(t, ok, "api key flag should be set")
		assert.True(t, apiKeyAuth, "api key flag should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/users/add-user", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.RequireSuperadminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/users/add-user", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireSuperadminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/users/delete-user/1", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		middlewares.RequireSuperadminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unconfigured Key Rejects Everything", func(t *testing.T) {
		unconfigured := &Middlewares{Log: zap.NewNop(), InternalConfig: &config.InternalConfig{}}
		req := httptest.NewRequest("POST", "/api/v1/users/add-user", nil)
		req.Header.Set(constvars.HeaderAPIKey, "anything")

		rr := httptest.NewRecorder()
		unconfigured.RequireSuperadminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
