package providers

import (
	"strconv"
	"time"

	"webhook-verifier/internal/crypto"
)

// hubspotVerifier reproduces HubSpot's v3 scheme: token "<sig>,t=<ts>"
// with the timestamp in milliseconds, signed message
// "<method><url><payload><ts>", HMAC-SHA256 base64. The request URL
// option is required; the method defaults to POST.
type hubspotVerifier struct{}

func (hubspotVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 || opts.url() == "" {
		return false
	}

	sig, timestamp := splitLeadingSignature(signature)
	if sig == "" || timestamp == "" {
		return false
	}

	if !isMillisTimestampFresh(timestamp, opts.tolerance()) {
		return false
	}

	message := opts.method() + opts.url() + string(payload) + timestamp
	computed, err := crypto.Base64HMAC(crypto.SHA256, []byte(secret), []byte(message))
	if err != nil {
		return false
	}

	return crypto.ConstantTimeEqualsString(sig, computed)
}

// isMillisTimestampFresh is the millisecond-scale freshness check; the
// shared primitive works in seconds only
func isMillisTimestampFresh(value string, toleranceSeconds int64) bool {
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ts <= 0 {
		return false
	}

	diff := time.Now().UnixMilli() - ts
	if diff < 0 {
		diff = -diff
	}

	return diff <= toleranceSeconds*1000
}
