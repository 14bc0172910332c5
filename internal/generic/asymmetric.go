package generic

import "webhook-verifier/internal/crypto"

// VerifyEd25519 checks an Ed25519 signature over payload; the public key
// may be raw 32 bytes or SPKI/DER-wrapped
func VerifyEd25519(payload, signature, publicKey []byte) bool {
	if len(payload) == 0 || len(signature) == 0 || len(publicKey) == 0 {
		return false
	}
	return crypto.VerifyEd25519(publicKey, signature, payload)
}

// VerifyRSA checks an RSASSA-PKCS1-v1_5 SHA-256 signature over payload;
// the public key may be PEM or DER
func VerifyRSA(payload, signature, publicKey []byte) bool {
	if len(payload) == 0 || len(signature) == 0 || len(publicKey) == 0 {
		return false
	}
	return crypto.VerifyRSA(publicKey, crypto.SHA256, signature, payload)
}

// TimingSafeEqual compares two strings in constant time
func TimingSafeEqual(a, b string) bool {
	return crypto.ConstantTimeEqualsString(a, b)
}

// ValidateTimestamp checks a Unix-seconds timestamp against a replay
// window; a non-positive tolerance means the 300 second default
func ValidateTimestamp(timestamp string, toleranceSeconds int64) bool {
	if toleranceSeconds <= 0 {
		toleranceSeconds = crypto.DefaultToleranceSeconds
	}
	return crypto.IsTimestampFresh(timestamp, toleranceSeconds)
}
