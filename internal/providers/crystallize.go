package providers

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"webhook-verifier/internal/crypto"
)

// crystallizeVerifier reproduces Crystallize's nested scheme: the
// signature token is itself an HS256 JWT whose outer signature is
// HMAC-SHA256 over "<header>.<payload>" with the shared secret. The JWT
// claims must carry an unexpired "exp" and an "hmac" claim equal to the
// hex HMAC-SHA256 of the JSON document {url, method, body}. The request
// URL option is required; the method defaults to POST.
type crystallizeVerifier struct{}

// requestFingerprint is the signed inner document; field order matters
// because the HMAC covers the exact serialized bytes
type requestFingerprint struct {
	URL    string `json:"url"`
	Method string `json:"method"`
	Body   string `json:"body"`
}

func (crystallizeVerifier) Verify(payload []byte, signature, secret string, opts *Options) bool {
	if len(payload) == 0 || opts.url() == "" {
		return false
	}

	token, err := jwt.Parse(signature,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	claimed, ok := claims["hmac"].(string)
	if !ok || claimed == "" {
		return false
	}

	document, err := json.Marshal(requestFingerprint{
		URL:    opts.url(),
		Method: opts.method(),
		Body:   string(payload),
	})
	if err != nil {
		return false
	}

	computed, err := crypto.HexHMAC(crypto.SHA256, []byte(secret), document)
	if err != nil {
		return false
	}

	return hexEquals(claimed, computed)
}
