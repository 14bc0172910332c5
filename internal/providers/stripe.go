package providers

import "webhook-verifier/internal/crypto"

// stripeVerifier reproduces Stripe's scheme: token
// "t=<ts>,v1=<sig>[,v1=<sig>...][,v0=<legacy>]", signed message
// "<ts>.<payload>", HMAC-SHA256 hex. Any one v1 candidate matching
// accepts; v0 legacy signatures are ignored.
type stripeVerifier struct{}

func (stripeVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 {
		return false
	}

	var timestamp string
	var candidates []string
	for _, pair := range parsePairs(signature, ",", "=") {
		switch pair[0] {
		case "t":
			timestamp = pair[1]
		case "v1":
			candidates = append(candidates, pair[1])
		}
	}

	if timestamp == "" || len(candidates) == 0 {
		return false
	}

	if !crypto.IsTimestampFresh(timestamp, opts.tolerance()) {
		return false
	}

	signedPayload := timestamp + "." + string(payload)
	computed, err := crypto.HexHMAC(crypto.SHA256, []byte(secret), []byte(signedPayload))
	if err != nil {
		return false
	}

	// Check every candidate rather than returning on the first hit
	matched := false
	for _, candidate := range candidates {
		if hexEquals(candidate, computed) {
			matched = true
		}
	}
	return matched
}
