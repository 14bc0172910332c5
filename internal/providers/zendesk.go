package providers

import "webhook-verifier/internal/crypto"

// zendeskVerifier reproduces Zendesk's scheme: token "<sig>,t=<ts>",
// signed message "<ts><payload>", HMAC-SHA256 base64
type zendeskVerifier struct{}

func (zendeskVerifier) Verify(payload []byte, signature, secret string, _ *Options) bool {
	if len(payload) == 0 {
		return false
	}

	sig, timestamp := splitLeadingSignature(signature)
	if sig == "" || timestamp == "" {
		return false
	}

	message := timestamp + string(payload)
	computed, err := crypto.Base64HMAC(crypto.SHA256, []byte(secret), []byte(message))
	if err != nil {
		return false
	}

	return crypto.ConstantTimeEqualsString(sig, computed)
}
