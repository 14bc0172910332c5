package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webhook-verifier/internal/providers"
)

type staticSecrets struct {
	secrets   map[providers.Provider]string
	fallbacks map[providers.Provider][]string
}

func (s *staticSecrets) Secret(provider providers.Provider) (string, bool) {
	secret, ok := s.secrets[provider]
	return secret, ok
}

func (s *staticSecrets) AdditionalSecrets(provider providers.Provider) []string {
	return s.fallbacks[provider]
}

func githubSignature(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyMiddleware(t *testing.T) {
	payload := `{"action":"opened"}`
	secret := "middleware-secret"
	secrets := &staticSecrets{
		secrets: map[providers.Provider]string{providers.GitHub: secret},
		fallbacks: map[providers.Provider][]string{
			providers.GitHub: {"retired-secret"},
		},
	}

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seenBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Verify(providers.GitHub, secrets, 0, nil)(next)

	t.Run("valid signature passes body through", func(t *testing.T) {
		seenBody = ""
		req := httptest.NewRequest(http.MethodPost, "/webhooks/github", strings.NewReader(payload))
		req.Header.Set("X-Hub-Signature-256", githubSignature(secret, payload))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, payload, seenBody)
	})

	t.Run("rotated secret still verifies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/github", strings.NewReader(payload))
		req.Header.Set("X-Hub-Signature-256", githubSignature("retired-secret", payload))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("bad signature is rejected without detail", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/github", strings.NewReader(payload))
		req.Header.Set("X-Hub-Signature-256", githubSignature("wrong-secret", payload))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "signature")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/github", strings.NewReader(payload))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("unconfigured provider is rejected", func(t *testing.T) {
		rejecting := Verify(providers.Stripe, secrets, 0, nil)(next)
		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))

		recorder := httptest.NewRecorder()
		rejecting.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestPreserveRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader("raw bytes"))

	body, err := PreserveRequestBody(req)
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", string(body))

	again, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", string(again))
}

func TestRequestURL(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/hooks?a=1", nil)
		assert.Equal(t, "http://example.com/hooks?a=1", RequestURL(req))
	})

	t.Run("forwarded proto wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/hooks", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		assert.Equal(t, "https://example.com/hooks", RequestURL(req))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}
