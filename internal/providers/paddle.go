package providers

import (
	"encoding/base64"

	"webhook-verifier/internal/crypto"
)

// paddleVerifier reproduces Paddle's classic scheme: token
// "ts=<ts>;h1=<sig>" with semicolon separators, signed message
// "<ts>:<payload>", RSA-SHA256 with base64 signature; the secret is
// Paddle's RSA public key in PEM or DER form.
type paddleVerifier struct{}

func (paddleVerifier) Verify(payload []byte, signature, secret string, _ *Options) bool {
	if len(payload) == 0 {
		return false
	}

	var timestamp, sig string
	for _, pair := range parsePairs(signature, ";", "=") {
		switch pair[0] {
		case "ts":
			timestamp = pair[1]
		case "h1":
			sig = pair[1]
		}
	}

	if timestamp == "" || sig == "" {
		return false
	}

	sigBytes, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}

	message := timestamp + ":" + string(payload)
	return crypto.VerifyRSA([]byte(secret), crypto.SHA256, sigBytes, []byte(message))
}
