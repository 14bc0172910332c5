package crypto

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEd25519(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	message := []byte("1700000000" + `{"type":"ping"}`)
	signature := ed25519.Sign(privateKey, message)

	t.Run("raw public key", func(t *testing.T) {
		assert.True(t, VerifyEd25519(publicKey, signature, message))
	})

	t.Run("spki wrapped public key", func(t *testing.T) {
		wrapped, err := x509.MarshalPKIXPublicKey(publicKey)
		require.NoError(t, err)
		assert.Len(t, wrapped, 44)
		assert.True(t, VerifyEd25519(wrapped, signature, message))
	})

	t.Run("tampered message", func(t *testing.T) {
		assert.False(t, VerifyEd25519(publicKey, signature, []byte("other")))
	})

	t.Run("tampered signature", func(t *testing.T) {
		bad := append([]byte(nil), signature...)
		bad[0] ^= 0xff
		assert.False(t, VerifyEd25519(publicKey, bad, message))
	})

	t.Run("malformed public key", func(t *testing.T) {
		assert.False(t, VerifyEd25519([]byte("not a key"), signature, message))
	})

	t.Run("wrong signature length", func(t *testing.T) {
		assert.False(t, VerifyEd25519(publicKey, signature[:32], message))
	})
}

func TestParseEd25519PublicKey(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	t.Run("raw", func(t *testing.T) {
		parsed, ok := ParseEd25519PublicKey(publicKey)
		assert.True(t, ok)
		assert.Equal(t, ed25519.PublicKey(publicKey), parsed)
	})

	t.Run("spki prefix without full parse", func(t *testing.T) {
		wrapped := append(append([]byte(nil), ed25519SPKIPrefix...), publicKey...)
		parsed, ok := ParseEd25519PublicKey(wrapped)
		assert.True(t, ok)
		assert.Equal(t, ed25519.PublicKey(publicKey), parsed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, ok := ParseEd25519PublicKey([]byte{1, 2, 3})
		assert.False(t, ok)
	})
}

func TestVerifyRSA(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	message := []byte("1700000000:" + `{"alert_name":"payment_succeeded"}`)
	digest := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, stdcrypto.SHA256, digest[:])
	require.NoError(t, err)

	pkixDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pkixDER})

	t.Run("pem public key", func(t *testing.T) {
		assert.True(t, VerifyRSA(pemKey, SHA256, signature, message))
	})

	t.Run("bare der public key", func(t *testing.T) {
		assert.True(t, VerifyRSA(pkixDER, SHA256, signature, message))
	})

	t.Run("pkcs1 der public key", func(t *testing.T) {
		der := x509.MarshalPKCS1PublicKey(&privateKey.PublicKey)
		assert.True(t, VerifyRSA(der, SHA256, signature, message))
	})

	t.Run("tampered message", func(t *testing.T) {
		assert.False(t, VerifyRSA(pemKey, SHA256, signature, []byte("other")))
	})

	t.Run("wrong hash", func(t *testing.T) {
		assert.False(t, VerifyRSA(pemKey, SHA1, signature, message))
	})

	t.Run("unsupported hash", func(t *testing.T) {
		assert.False(t, VerifyRSA(pemKey, SHA512, signature, message))
	})

	t.Run("malformed key", func(t *testing.T) {
		assert.False(t, VerifyRSA([]byte("nope"), SHA256, signature, message))
	})
}

func TestVerifyECDSA(t *testing.T) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	message := []byte("1700000000" + `[{"event":"delivered"}]`)
	digest := sha256.Sum256(message)
	signature, err := ecdsa.SignASN1(rand.Reader, privateKey, digest[:])
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	t.Run("der public key", func(t *testing.T) {
		assert.True(t, VerifyECDSA(der, signature, message))
	})

	t.Run("pem public key", func(t *testing.T) {
		pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
		assert.True(t, VerifyECDSA(pemKey, signature, message))
	})

	t.Run("tampered message", func(t *testing.T) {
		assert.False(t, VerifyECDSA(der, signature, []byte("other")))
	})

	t.Run("malformed signature", func(t *testing.T) {
		assert.False(t, VerifyECDSA(der, []byte("junk"), message))
	})

	t.Run("malformed key", func(t *testing.T) {
		assert.False(t, VerifyECDSA([]byte("junk"), signature, message))
	})
}
