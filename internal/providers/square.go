package providers

import "webhook-verifier/internal/crypto"

// squareVerifier reproduces Square's scheme: signed message is the
// notification URL concatenated with the raw payload, HMAC-SHA256 base64.
// The request URL option is required.
type squareVerifier struct{}

func (squareVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 || opts.url() == "" {
		return false
	}

	message := opts.url() + string(payload)
	computed, err := crypto.Base64HMAC(crypto.SHA256, []byte(secret), []byte(message))
	if err != nil {
		return false
	}

	return crypto.ConstantTimeEqualsString(signature, computed)
}
