package middleware

import (
	"bytes"
	"io"
	"net/http"

	"webhook-verifier/internal/common/logging"
	"webhook-verifier/internal/engine"
	"webhook-verifier/internal/headers"
	"webhook-verifier/internal/providers"
)

// SecretSource resolves the credentials for a provider. Typically backed
// by config; returning false means the provider is not configured here.
type SecretSource interface {
	Secret(provider providers.Provider) (string, bool)
	AdditionalSecrets(provider providers.Provider) []string
}

// Verify rejects requests whose webhook signature does not verify for the
// given provider. The raw body is preserved for downstream handlers. The
// response never says why verification failed; the reason is only logged.
func Verify(provider providers.Provider, secrets SecretSource, tolerance int64, logger logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret, ok := secrets.Secret(provider)
			if !ok {
				logger.Warn("No secret configured for provider",
					logging.Field{Key: "provider", Value: string(provider)},
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			body, err := PreserveRequestBody(r)
			if err != nil {
				logger.Error("Failed to read request body", err)
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}

			opts := &providers.Options{
				Tolerance:         tolerance,
				URL:               RequestURL(r),
				Method:            r.Method,
				AdditionalSecrets: secrets.AdditionalSecrets(provider),
			}

			valid, err := engine.VerifyRequest(provider, body, headers.FromHTTP(r.Header), secret, opts)
			if err != nil {
				logger.Warn("Signature verification error",
					logging.Field{Key: "provider", Value: string(provider)},
					logging.Field{Key: "error", Value: err.Error()},
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if !valid {
				logger.Warn("Signature verification failed",
					logging.Field{Key: "provider", Value: string(provider)},
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			logger.Debug("Signature verified",
				logging.Field{Key: "provider", Value: string(provider)},
			)
			next.ServeHTTP(w, r)
		})
	}
}

// PreserveRequestBody reads the request body and restores it so later
// handlers can read it again. Signature schemes sign the exact bytes, so
// the body must never be re-encoded between here and verification.
func PreserveRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// RequestURL rebuilds the externally visible URL for schemes that sign
// over it, honoring X-Forwarded-Proto behind a proxy
func RequestURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
