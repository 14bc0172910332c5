package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHMAC(t *testing.T) {
	key := []byte("test-secret")
	message := []byte(`{"action":"opened"}`)

	t.Run("sha256 known vector", func(t *testing.T) {
		sum, err := ComputeHMAC(SHA256, key, message)
		require.NoError(t, err)
		assert.Len(t, sum, 32)

		// Same inputs always give the same digest
		again, err := ComputeHMAC(SHA256, key, message)
		require.NoError(t, err)
		assert.Equal(t, sum, again)
	})

	t.Run("digest lengths per algorithm", func(t *testing.T) {
		sha1Sum, err := ComputeHMAC(SHA1, key, message)
		require.NoError(t, err)
		assert.Len(t, sha1Sum, 20)

		sha512Sum, err := ComputeHMAC(SHA512, key, message)
		require.NoError(t, err)
		assert.Len(t, sha512Sum, 64)
	})

	t.Run("key changes digest", func(t *testing.T) {
		sum, err := ComputeHMAC(SHA256, key, message)
		require.NoError(t, err)

		other, err := ComputeHMAC(SHA256, []byte("wrong-secret"), message)
		require.NoError(t, err)
		assert.NotEqual(t, sum, other)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := ComputeHMAC("md5", key, message)
		assert.Error(t, err)
	})
}

func TestHMACProjections(t *testing.T) {
	key := []byte("key")
	message := []byte("message")

	sum, err := ComputeHMAC(SHA256, key, message)
	require.NoError(t, err)

	t.Run("hex", func(t *testing.T) {
		encoded, err := HexHMAC(SHA256, key, message)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(sum), encoded)
	})

	t.Run("base64", func(t *testing.T) {
		encoded, err := Base64HMAC(SHA256, key, message)
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString(sum), encoded)
	})

	t.Run("encoded dispatch", func(t *testing.T) {
		hexEncoded, err := EncodedHMAC(SHA256, EncodingHex, key, message)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(sum), hexEncoded)

		b64Encoded, err := EncodedHMAC(SHA256, EncodingBase64, key, message)
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString(sum), b64Encoded)

		_, err = EncodedHMAC(SHA256, "base32", key, message)
		assert.Error(t, err)
	})
}
