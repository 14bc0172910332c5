package providers

import (
	"strings"

	"webhook-verifier/internal/crypto"
)

// parsePairs splits a token like "t=123,v1=abc" into ordered key/value
// pairs. Segments without the key/value separator are skipped.
func parsePairs(token, pairSep, kvSep string) [][2]string {
	segments := strings.Split(token, pairSep)
	pairs := make([][2]string, 0, len(segments))

	for _, segment := range segments {
		key, value, found := strings.Cut(strings.TrimSpace(segment), kvSep)
		if !found {
			continue
		}
		pairs = append(pairs, [2]string{key, value})
	}

	return pairs
}

// splitLeadingSignature parses the "<sig>,t=<ts>" token family: the first
// comma-separated segment is the signature, later "t=" segments carry the
// timestamp
func splitLeadingSignature(token string) (signature, timestamp string) {
	segments := strings.Split(token, ",")
	signature = segments[0]

	for _, segment := range segments[1:] {
		if value, found := strings.CutPrefix(strings.TrimSpace(segment), "t="); found {
			timestamp = value
		}
	}

	return signature, timestamp
}

// hexEquals compares an incoming hex signature against a computed
// lower-case hex digest, case-insensitively and in constant time
func hexEquals(candidate, computed string) bool {
	return crypto.ConstantTimeEqualsString(strings.ToLower(candidate), computed)
}
