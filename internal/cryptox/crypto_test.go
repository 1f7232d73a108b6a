package cryptox

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, KeySize)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(secret, salt)
	key2 := DeriveKey(secret, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != KeySize {
		t.Errorf("expected %d-byte key, got %d", KeySize, len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	secret := []byte("secret-password")

	key1 := DeriveKey(secret, []byte("salt-1"))
	key2 := DeriveKey(secret, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestEncryptDecryptEntry_RoundTrip(t *testing.T) {
	in := sample{Token: "t", ID: "1"}

	ciphertext, nonce, err := EncryptEntry(in, testKey())
	require.NoError(t, err)
	require.Len(t, nonce, 12)

	var out sample
	require.NoError(t, DecryptEntry(ciphertext, nonce, testKey(), &out))
	assert.Equal(t, in, out)
}

func TestEncryptEntry_BadKeyLength(t *testing.T) {
	_, _, err := EncryptEntry(sample{}, []byte("short"))
	require.Error(t, err)
}

func TestSealOpenString_RoundTrip(t *testing.T) {
	in := sample{Token: "abc", ID: "7"}

	text, err := SealString(in, testKey())
	require.NoError(t, err)

	_, err = base64.StdEncoding.DecodeString(text)
	require.NoError(t, err, "sealed text must be base64")

	var out sample
	require.NoError(t, OpenString(text, testKey(), &out))
	assert.Equal(t, in, out)
}

func TestSealString_FreshNoncePerCall(t *testing.T) {
	a, err := SealString(sample{Token: "x"}, testKey())
	require.NoError(t, err)
	b, err := SealString(sample{Token: "x"}, testKey())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpenString_Failures(t *testing.T) {
	good, err := SealString(sample{Token: "x"}, testKey())
	require.NoError(t, err)

	var out sample

	t.Run("not base64", func(t *testing.T) {
		require.Error(t, OpenString("%%%not-base64", testKey(), &out))
	})

	t.Run("too short", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
		require.ErrorIs(t, OpenString(short, testKey(), &out), ErrShortCiphertext)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := bytes.Repeat([]byte{0x24}, KeySize)
		require.Error(t, OpenString(good, other, &out))
	})

	t.Run("tampered", func(t *testing.T) {
		raw, _ := base64.StdEncoding.DecodeString(good)
		raw[len(raw)-1] ^= 0xFF
		require.Error(t, OpenString(base64.StdEncoding.EncodeToString(raw), testKey(), &out))
	})
}
