package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/sirupsen/logrus"
)

// Header names presented by API clients on every authenticated request.
const (
	APIKeyHeader       = "x-api-key"
	EnterpriseIDHeader = "x-enterprise-id"
)

type APIKeyAuth struct {
	auth auth.APIKeyAuthenticator
}

func NewAPIKeyAuth(auth auth.APIKeyAuthenticator) *APIKeyAuth {
	return &APIKeyAuth{
		auth: auth,
	}
}

// Authenticate requires both the x-api-key and x-enterprise-id headers and
// resolves them against the API key store. Missing headers and invalid
// credentials both return 401 with a JSON error body. The error bodies are
// part of the public contract and must not leak which credential was wrong.
func (a *APIKeyAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		apiKey := r.Header.Get(APIKeyHeader)
		enterpriseID := r.Header.Get(EnterpriseIDHeader)
		if apiKey == "" || enterpriseID == "" {
			writeJSONError(w, http.StatusUnauthorized, "Missing required headers: x-api-key and x-enterprise-id")
			return
		}

		key, err := a.auth.Authenticate(ctx, apiKey, enterpriseID)
		if errors.Is(err, model.ErrAPIKeyError) {
			writeJSONError(w, http.StatusUnauthorized, "Invalid API key or enterprise ID")
			return
		} else if err != nil {
			logrus.Errorf("APIKeyAuth.Authenticate: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx = context.WithValue(ctx, ENTERPRISE_ID, key.EnterpriseID)
		ctx = context.WithValue(ctx, API_KEY_ID, key.ID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error": "` + msg + `"}`))
}
