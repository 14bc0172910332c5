package providers

import (
	"strings"

	"webhook-verifier/internal/crypto"
)

// bodyHMACVerifier covers providers whose signature is a keyed hash of
// the raw payload alone: GitHub, Shopify, Mailchimp, Typeform, Intercom,
// Linear, Vercel, Segment. The prefix, when set, is stripped if present;
// bare signatures are accepted too.
type bodyHMACVerifier struct {
	algorithm crypto.HashAlgorithm
	encoding  crypto.Encoding
	prefix    string
}

func (v bodyHMACVerifier) Verify(payload []byte, signature, secret string, _ *Options) bool {
	if len(payload) == 0 {
		return false
	}

	if v.prefix != "" {
		signature = strings.TrimPrefix(signature, v.prefix)
	}
	if signature == "" {
		return false
	}

	computed, err := crypto.EncodedHMAC(v.algorithm, v.encoding, []byte(secret), payload)
	if err != nil {
		return false
	}

	if v.encoding == crypto.EncodingHex {
		return hexEquals(signature, computed)
	}
	return crypto.ConstantTimeEqualsString(signature, computed)
}
