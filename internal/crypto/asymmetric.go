package crypto

import (
	"bytes"
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
)

// ed25519SPKIPrefix is the DER prefix of a SubjectPublicKeyInfo wrapping
// a raw Ed25519 public key (OID 1.3.101.112)
var ed25519SPKIPrefix = []byte{
	0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x03, 0x21, 0x00,
}

// ParseEd25519PublicKey accepts either a raw 32-byte Ed25519 public key
// or a DER/SPKI-wrapped one and returns the raw key
func ParseEd25519PublicKey(data []byte) (ed25519.PublicKey, bool) {
	if len(data) == ed25519.PublicKeySize {
		return ed25519.PublicKey(data), true
	}

	if parsed, err := x509.ParsePKIXPublicKey(data); err == nil {
		if key, ok := parsed.(ed25519.PublicKey); ok {
			return key, true
		}
		return nil, false
	}

	// SPKI prefix without a full DER parse, seen from some providers
	if len(data) == len(ed25519SPKIPrefix)+ed25519.PublicKeySize &&
		bytes.HasPrefix(data, ed25519SPKIPrefix) {
		return ed25519.PublicKey(data[len(ed25519SPKIPrefix):]), true
	}

	return nil, false
}

// VerifyEd25519 checks an Ed25519 signature. The public key may be raw or
// SPKI-wrapped. Any structural problem yields false rather than an error.
func VerifyEd25519(publicKey, signature, message []byte) bool {
	key, ok := ParseEd25519PublicKey(publicKey)
	if !ok {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(key, message, signature)
}

// parseRSAPublicKey parses a PEM or bare-DER RSA public key in either
// PKIX or PKCS#1 form
func parseRSAPublicKey(data []byte) (*rsa.PublicKey, bool) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
	}

	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		if key, ok := parsed.(*rsa.PublicKey); ok {
			return key, true
		}
		return nil, false
	}

	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return key, true
	}

	return nil, false
}

// VerifyRSA checks an RSASSA-PKCS1-v1_5 signature over message using the
// given hash algorithm (SHA1 or SHA256). Parse failures yield false.
func VerifyRSA(publicKey []byte, algorithm HashAlgorithm, signature, message []byte) bool {
	key, ok := parseRSAPublicKey(publicKey)
	if !ok {
		return false
	}

	var hashed []byte
	var h stdcrypto.Hash

	switch algorithm {
	case SHA1:
		sum := sha1.Sum(message)
		hashed = sum[:]
		h = stdcrypto.SHA1
	case SHA256:
		sum := sha256.Sum256(message)
		hashed = sum[:]
		h = stdcrypto.SHA256
	default:
		return false
	}

	return rsa.VerifyPKCS1v15(key, h, hashed, signature) == nil
}

// VerifyECDSA checks an ECDSA P-256/SHA-256 signature in ASN.1 DER form.
// The public key may be PEM or bare SPKI DER. Parse failures yield false.
func VerifyECDSA(publicKey, signature, message []byte) bool {
	der := publicKey
	if block, _ := pem.Decode(publicKey); block != nil {
		der = block.Bytes
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return false
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return false
	}

	digest := sha256.Sum256(message)
	return ecdsa.VerifyASN1(key, digest[:], signature)
}
