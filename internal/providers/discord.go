package providers

import (
	"encoding/hex"

	"webhook-verifier/internal/crypto"
)

// discordVerifier reproduces Discord's scheme: token "<sig>,t=<ts>",
// signed message "<ts><payload>", Ed25519 with hex-encoded signature and
// public key. The public key may also arrive SPKI-wrapped.
type discordVerifier struct{}

func (discordVerifier) Verify(payload []byte, signature, secret string, _ *Options) bool {
	if len(payload) == 0 {
		return false
	}

	sig, timestamp := splitLeadingSignature(signature)
	if sig == "" || timestamp == "" {
		return false
	}

	sigBytes, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	publicKey, err := hex.DecodeString(secret)
	if err != nil {
		return false
	}

	message := timestamp + string(payload)
	return crypto.VerifyEd25519(publicKey, sigBytes, []byte(message))
}
