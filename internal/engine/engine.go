// Package engine is the front door of webhook verification: it accepts
// either a ready-made signature token or a raw header map, normalizes the
// latter, and dispatches to the provider's verifier.
package engine

import (
	"webhook-verifier/internal/headers"
	"webhook-verifier/internal/providers"
)

// Verify checks a signature token against a provider's scheme. The only
// error is an unknown provider name; any attacker-controllable failure
// returns (false, nil).
func Verify(provider providers.Provider, payload []byte, signature, secret string, opts *providers.Options) (bool, error) {
	return providers.Verify(provider, payload, signature, secret, opts)
}

// VerifyRequest normalizes the provider's signature header(s) from the
// request header map into the canonical token, then verifies. Missing
// headers surface as an error naming them so handlers can log the cause
// without leaking it to the sender.
func VerifyRequest(provider providers.Provider, payload []byte, requestHeaders headers.Map, secret string, opts *providers.Options) (bool, error) {
	token, err := headers.Normalize(provider, requestHeaders)
	if err != nil {
		return false, err
	}
	return providers.Verify(provider, payload, token, secret, opts)
}

// Directory exposes the provider-to-header-name directory for
// diagnostics; it plays no part in verification
func Directory() map[providers.Provider]map[string]string {
	return headers.Directory()
}
