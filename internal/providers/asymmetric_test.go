package providers

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscord(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	payload := []byte(`{"type":1}`)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	signature := ed25519.Sign(privateKey, []byte(ts+string(payload)))

	secret := hex.EncodeToString(publicKey)
	token := hex.EncodeToString(signature) + ",t=" + ts

	t.Run("valid", func(t *testing.T) {
		assert.True(t, mustVerify(t, Discord, payload, token, secret, nil))
	})

	t.Run("tampered payload", func(t *testing.T) {
		assert.False(t, mustVerify(t, Discord, []byte(`{"type":2}`), token, secret, nil))
	})

	t.Run("missing timestamp", func(t *testing.T) {
		assert.False(t, mustVerify(t, Discord, payload, hex.EncodeToString(signature), secret, nil))
	})

	t.Run("non-hex signature", func(t *testing.T) {
		assert.False(t, mustVerify(t, Discord, payload, "zz,t="+ts, secret, nil))
	})

	t.Run("non-hex public key", func(t *testing.T) {
		assert.False(t, mustVerify(t, Discord, payload, token, "not-hex", nil))
	})
}

func TestSendGrid(t *testing.T) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	secret := base64.StdEncoding.EncodeToString(der)

	payload := []byte(`[{"event":"processed"}]`)

	sign := func(message string) string {
		digest := sha256.Sum256([]byte(message))
		sig, err := ecdsa.SignASN1(rand.Reader, privateKey, digest[:])
		require.NoError(t, err)
		return base64.StdEncoding.EncodeToString(sig)
	}

	t.Run("with timestamp", func(t *testing.T) {
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		token := sign(ts+string(payload)) + ",t=" + ts
		assert.True(t, mustVerify(t, SendGrid, payload, token, secret, nil))
	})

	t.Run("timestamp omitted signs bare payload", func(t *testing.T) {
		token := sign(string(payload))
		assert.True(t, mustVerify(t, SendGrid, payload, token, secret, nil))
	})

	t.Run("tampered payload", func(t *testing.T) {
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		token := sign(ts+string(payload)) + ",t=" + ts
		assert.False(t, mustVerify(t, SendGrid, []byte(`[]`), token, secret, nil))
	})

	t.Run("non-base64 public key", func(t *testing.T) {
		token := sign(string(payload))
		assert.False(t, mustVerify(t, SendGrid, payload, token, "%%%", nil))
	})
}

func TestPaddle(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pkixDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	secret := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pkixDER}))

	payload := []byte(`{"alert_name":"payment_succeeded"}`)
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	digest := sha256.Sum256([]byte(ts + ":" + string(payload)))
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, stdcrypto.SHA256, digest[:])
	require.NoError(t, err)

	token := "ts=" + ts + ";h1=" + base64.StdEncoding.EncodeToString(signature)

	t.Run("valid", func(t *testing.T) {
		assert.True(t, mustVerify(t, Paddle, payload, token, secret, nil))
	})

	t.Run("tampered payload", func(t *testing.T) {
		assert.False(t, mustVerify(t, Paddle, []byte(`{}`), token, secret, nil))
	})

	t.Run("wrong delimiter", func(t *testing.T) {
		wrong := "ts=" + ts + ",h1=" + base64.StdEncoding.EncodeToString(signature)
		assert.False(t, mustVerify(t, Paddle, payload, wrong, secret, nil))
	})

	t.Run("missing h1", func(t *testing.T) {
		assert.False(t, mustVerify(t, Paddle, payload, "ts="+ts, secret, nil))
	})
}
