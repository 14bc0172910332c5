package providers

import (
	"strconv"
	"time"

	"webhook-verifier/internal/crypto"
)

// slackVerifier reproduces Slack's scheme: token "v0=<sig>,t=<ts>" or
// bare "v0=<sig>", base string "v0:<ts>:<payload>", HMAC-SHA256 hex.
//
// When the timestamp is absent the current time is substituted, which
// makes a provider-issued signature effectively unverifiable on that
// path and disables replay protection. This matches the documented
// behavior of the bare-signature form and is a known weak path.
type slackVerifier struct{}

func (slackVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 {
		return false
	}

	var sig, timestamp string
	for _, pair := range parsePairs(signature, ",", "=") {
		switch pair[0] {
		case "v0":
			sig = pair[1]
		case "t":
			timestamp = pair[1]
		}
	}

	if sig == "" {
		return false
	}

	if timestamp == "" {
		timestamp = strconv.FormatInt(time.Now().Unix(), 10)
	}

	if !crypto.IsTimestampFresh(timestamp, opts.tolerance()) {
		return false
	}

	baseString := "v0:" + timestamp + ":" + string(payload)
	computed, err := crypto.HexHMAC(crypto.SHA256, []byte(secret), []byte(baseString))
	if err != nil {
		return false
	}

	return hexEquals(sig, computed)
}
