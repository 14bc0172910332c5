// Package generic exposes provider-agnostic signing and verification
// helpers for integrating webhook providers outside the built-in set.
package generic

import (
	"strings"

	"webhook-verifier/internal/crypto"
)

// HMACOptions configures the generic HMAC helpers
type HMACOptions struct {
	// Algorithm selects the hash function; empty means SHA-256
	Algorithm crypto.HashAlgorithm

	// Encoding selects the signature projection; empty means hex
	Encoding crypto.Encoding

	// Prefix, when set, is stripped from incoming signatures if present
	// (e.g. "sha256=")
	Prefix string
}

func (o *HMACOptions) algorithm() crypto.HashAlgorithm {
	if o == nil || o.Algorithm == "" {
		return crypto.SHA256
	}
	return o.Algorithm
}

func (o *HMACOptions) encoding() crypto.Encoding {
	if o == nil || o.Encoding == "" {
		return crypto.EncodingHex
	}
	return o.Encoding
}

func (o *HMACOptions) prefix() string {
	if o == nil {
		return ""
	}
	return o.Prefix
}

// SignHMAC computes the encoded keyed hash of payload, with the prefix
// prepended when configured
func SignHMAC(payload []byte, secret string, opts *HMACOptions) (string, error) {
	signature, err := crypto.EncodedHMAC(opts.algorithm(), opts.encoding(), []byte(secret), payload)
	if err != nil {
		return "", err
	}
	return opts.prefix() + signature, nil
}

// VerifyHMAC checks an HMAC signature over the raw payload
func VerifyHMAC(payload []byte, signature, secret string, opts *HMACOptions) bool {
	if len(payload) == 0 || signature == "" || secret == "" {
		return false
	}

	if prefix := opts.prefix(); prefix != "" {
		signature = strings.TrimPrefix(signature, prefix)
	}

	computed, err := crypto.EncodedHMAC(opts.algorithm(), opts.encoding(), []byte(secret), payload)
	if err != nil {
		return false
	}

	if opts.encoding() == crypto.EncodingHex {
		return crypto.ConstantTimeEqualsString(strings.ToLower(signature), computed)
	}
	return crypto.ConstantTimeEqualsString(signature, computed)
}

// VerifyHMACWithTimestamp checks an HMAC signature over a message built
// from a format template with {timestamp} and {payload} placeholders,
// covering the common "prefix timestamp onto payload" family. The
// timestamp is also checked against the replay window.
func VerifyHMACWithTimestamp(payload []byte, signature, secret, timestamp, format string, toleranceSeconds int64, opts *HMACOptions) bool {
	if timestamp == "" || format == "" {
		return false
	}

	if toleranceSeconds <= 0 {
		toleranceSeconds = crypto.DefaultToleranceSeconds
	}
	if !crypto.IsTimestampFresh(timestamp, toleranceSeconds) {
		return false
	}

	message := strings.ReplaceAll(format, "{timestamp}", timestamp)
	message = strings.ReplaceAll(message, "{payload}", string(payload))

	return VerifyHMAC([]byte(message), signature, secret, opts)
}
