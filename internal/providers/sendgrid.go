package providers

import (
	"encoding/base64"

	"webhook-verifier/internal/crypto"
)

// sendgridVerifier reproduces SendGrid's event webhook scheme: token
// "<sig>,t=<ts>" with the timestamp optional, signed message
// "<ts><payload>" (the bare payload when no timestamp is present), ECDSA
// P-256/SHA-256 with base64 signature and base64 DER public key.
type sendgridVerifier struct{}

func (sendgridVerifier) Verify(payload []byte, signature, secret string, _ *Options) bool {
	if len(payload) == 0 {
		return false
	}

	sig, timestamp := splitLeadingSignature(signature)
	if sig == "" {
		return false
	}

	sigBytes, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}

	publicKey, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return false
	}

	message := timestamp + string(payload)
	return crypto.VerifyECDSA(publicKey, sigBytes, []byte(message))
}
