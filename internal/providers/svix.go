package providers

import (
	"encoding/base64"
	"strings"

	"webhook-verifier/internal/crypto"
)

// svixVerifier reproduces the Svix scheme used by Svix-hosted providers:
// the signature header holds one or more space-separated "v1,<sig>"
// candidates, the canonical token appends ",t=<ts>,id=<id>", the secret
// is "whsec_"-prefixed base64, and the signed content is
// "<id>.<ts>.<payload>" under HMAC-SHA256 base64. Any one candidate
// matching accepts.
type svixVerifier struct{}

func (svixVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 {
		return false
	}

	var sigSegments []string
	var timestamp, id string
	for _, segment := range strings.Split(signature, ",") {
		switch {
		case strings.HasPrefix(segment, "t="):
			timestamp = segment[len("t="):]
		case strings.HasPrefix(segment, "id="):
			id = segment[len("id="):]
		default:
			sigSegments = append(sigSegments, segment)
		}
	}

	if timestamp == "" || id == "" || len(sigSegments) == 0 {
		return false
	}

	if !crypto.IsTimestampFresh(timestamp, opts.tolerance()) {
		return false
	}

	key := []byte(secret)
	if encoded, found := strings.CutPrefix(secret, "whsec_"); found {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return false
		}
		key = decoded
	}

	signedContent := id + "." + timestamp + "." + string(payload)
	computed, err := crypto.Base64HMAC(crypto.SHA256, key, []byte(signedContent))
	if err != nil {
		return false
	}

	// The signature portion may hold several space-separated candidates,
	// each optionally "v1,"-versioned once rejoined
	matched := false
	for _, candidate := range strings.Fields(strings.Join(sigSegments, ",")) {
		candidate = strings.TrimPrefix(candidate, "v1,")
		if crypto.ConstantTimeEqualsString(candidate, computed) {
			matched = true
		}
	}
	return matched
}

// clerkVerifier delegates entirely to the Svix scheme, which Clerk uses
// for webhook delivery
type clerkVerifier struct{}

func (clerkVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	return svixVerifier{}.Verify(payload, signature, secret, opts)
}
