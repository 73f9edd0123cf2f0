package cryptox

import (
	"crypto/aes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/Werffios/AntilleanController/internal/common"
)

// 32 fixed bytes, base64url with padding.
const testKeyB64 = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="

func newTestCodec(t *testing.T, mode Mode) *Codec {
	t.Helper()
	c, err := NewCodec(testKeyB64, mode)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModeEnforce)

	for _, plaintext := range []string{
		"ana@x.com",
		"secret123",
		"",
		"exactly sixteen!",                    // one full block
		"unicode: привет, caña, 日本語",          // multi-byte runes
		strings.Repeat("long-credential-", 8), // several blocks
	} {
		env, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}
		got, err := c.Decrypt(env)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestCodec_FreshIVPerCall(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModeEnforce)

	a, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if a == b {
		t.Fatalf("two envelopes for the same plaintext are identical; IV is being reused")
	}
}

func TestCodec_EnvelopeFormat(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModeEnforce)

	env, err := c.Encrypt("probe")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	payload, err := base64.StdEncoding.DecodeString(env)
	if err != nil {
		t.Fatalf("outer layer is not base64: %v", err)
	}
	ivHex, ctB64, found := strings.Cut(string(payload), ":")
	if !found {
		t.Fatalf("payload has no iv separator: %q", payload)
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		t.Fatalf("iv part is not %d hex-encoded bytes: %q", aes.BlockSize, ivHex)
	}
	ct, err := base64.StdEncoding.DecodeString(ctB64)
	if err != nil || len(ct)%aes.BlockSize != 0 {
		t.Fatalf("ciphertext part is not block-aligned base64: %q", ctB64)
	}
}

func TestCodec_EnforceRejectsGarbage(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModeEnforce)

	for _, input := range []string{
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("no separator here")),
		base64.StdEncoding.EncodeToString([]byte("deadbeef:AAAA")), // short iv
		"plaintext-from-legacy-client",
	} {
		_, err := c.Decrypt(input)
		if !errors.Is(err, common.ErrInvalidEnvelope) {
			t.Fatalf("Decrypt(%q): expected ErrInvalidEnvelope, got %v", input, err)
		}
	}
}

func TestCodec_EnforceRejectsWrongKey(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModeEnforce)
	env, err := c.Encrypt("secret123")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	otherKey := base64.URLEncoding.EncodeToString(common.GenerateRandByteArray(32))
	other, err := NewCodec(otherKey, ModeEnforce)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	if _, err := other.Decrypt(env); !errors.Is(err, common.ErrInvalidEnvelope) {
		t.Fatalf("expected ErrInvalidEnvelope under wrong key, got %v", err)
	}
}

func TestCodec_PermissiveFallbackReturnsInput(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t, ModePermissiveFallback)

	const legacy = "plain@example.com"
	got, err := c.Decrypt(legacy)
	if err != nil {
		t.Fatalf("permissive Decrypt returned error: %v", err)
	}
	if got != legacy {
		t.Fatalf("permissive Decrypt changed input: got %q want %q", got, legacy)
	}

	// A valid envelope still decrypts normally in permissive mode.
	env, err := c.Encrypt("real-secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	got, err = c.Decrypt(env)
	if err != nil || got != "real-secret" {
		t.Fatalf("permissive Decrypt of valid envelope: got %q, %v", got, err)
	}
}

func TestNewCodec_KeyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		keyB64 string
	}{
		{"empty", ""},
		{"not base64url", "!!!not-base64!!!"},
		{"10 bytes", base64.URLEncoding.EncodeToString(make([]byte, 10))},
		{"33 bytes", base64.URLEncoding.EncodeToString(make([]byte, 33))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCodec(tc.keyB64, ModeEnforce); !errors.Is(err, common.ErrBadKeyLength) {
				t.Fatalf("expected ErrBadKeyLength, got %v", err)
			}
		})
	}

	for _, n := range []int{16, 24, 32} {
		key := base64.URLEncoding.EncodeToString(make([]byte, n))
		if _, err := NewCodec(key, ModeEnforce); err != nil {
			t.Fatalf("expected %d-byte key to be accepted, got %v", n, err)
		}
	}
}

func TestPKCS7_UnpadRejectsCorruption(t *testing.T) {
	t.Parallel()

	padded := pkcs7Pad([]byte("abc"), aes.BlockSize)
	padded[len(padded)-1] = 0 // zero padding length is never valid
	if _, err := pkcs7Unpad(padded, aes.BlockSize); err == nil {
		t.Fatalf("expected error for zero padding byte")
	}

	padded = pkcs7Pad([]byte("abc"), aes.BlockSize)
	padded[len(padded)-2] ^= 0xff
	if _, err := pkcs7Unpad(padded, aes.BlockSize); err == nil {
		t.Fatalf("expected error for inconsistent padding bytes")
	}
}
