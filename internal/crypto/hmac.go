// Package crypto provides the low-level primitives used by webhook
// signature verification: keyed hashing, constant-time comparison,
// asymmetric signature checks, and timestamp freshness validation.
package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"hash"

	"webhook-verifier/internal/common/errors"
)

// HashAlgorithm identifies the hash function used for keyed hashing
type HashAlgorithm string

const (
	// SHA1 is HMAC-SHA1
	SHA1 HashAlgorithm = "sha1"
	// SHA256 is HMAC-SHA256
	SHA256 HashAlgorithm = "sha256"
	// SHA512 is HMAC-SHA512
	SHA512 HashAlgorithm = "sha512"
)

// newHash returns the hash constructor for an algorithm
func newHash(algorithm HashAlgorithm) (func() hash.Hash, error) {
	switch algorithm {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, errors.ValidationError("unsupported algorithm: " + string(algorithm))
	}
}

// ComputeHMAC calculates the keyed hash of message under key
func ComputeHMAC(algorithm HashAlgorithm, key, message []byte) ([]byte, error) {
	newFn, err := newHash(algorithm)
	if err != nil {
		return nil, err
	}

	h := hmac.New(newFn, key)
	h.Write(message)
	return h.Sum(nil), nil
}

// HexHMAC returns the lower-case hex encoding of the keyed hash
func HexHMAC(algorithm HashAlgorithm, key, message []byte) (string, error) {
	sum, err := ComputeHMAC(algorithm, key, message)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Base64HMAC returns the standard base64 encoding of the keyed hash
func Base64HMAC(algorithm HashAlgorithm, key, message []byte) (string, error) {
	sum, err := ComputeHMAC(algorithm, key, message)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sum), nil
}

// Encoding identifies the textual projection of a digest
type Encoding string

const (
	// EncodingHex is lower-case hexadecimal
	EncodingHex Encoding = "hex"
	// EncodingBase64 is standard base64
	EncodingBase64 Encoding = "base64"
)

// EncodedHMAC computes the keyed hash and projects it with the given encoding
func EncodedHMAC(algorithm HashAlgorithm, encoding Encoding, key, message []byte) (string, error) {
	switch encoding {
	case EncodingHex:
		return HexHMAC(algorithm, key, message)
	case EncodingBase64:
		return Base64HMAC(algorithm, key, message)
	default:
		return "", errors.ValidationError("unsupported encoding: " + string(encoding))
	}
}
