package providers

import (
	"net/url"
	"sort"
	"strings"

	"webhook-verifier/internal/crypto"
)

// twilioVerifier reproduces Twilio's scheme: the payload is a URL-encoded
// form body, the signed message is the full request URL followed by every
// form field sorted by key and concatenated as key+value with no
// separator, under HMAC-SHA1 base64. The request URL option is required.
type twilioVerifier struct{}

func (twilioVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 || opts.url() == "" {
		return false
	}

	values, err := url.ParseQuery(string(payload))
	if err != nil {
		return false
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var message strings.Builder
	message.WriteString(opts.url())
	for _, key := range keys {
		for _, value := range values[key] {
			message.WriteString(key)
			message.WriteString(value)
		}
	}

	computed, err := crypto.Base64HMAC(crypto.SHA1, []byte(secret), []byte(message.String()))
	if err != nil {
		return false
	}

	return crypto.ConstantTimeEqualsString(signature, computed)
}
