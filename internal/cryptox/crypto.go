// Package cryptox implements the reversible credential envelope used on the
// wire between clients and the auth endpoints.
//
// An envelope is base64(hex(iv) + ":" + base64(ciphertext)) where the
// ciphertext is AES-CBC with PKCS#7 padding under the process-wide key.
// The format carries no integrity tag: it provides confidentiality only,
// not tamper evidence. Clients depend on this exact shape, so upgrading to
// an AEAD mode is a coordinated wire change, not a local fix.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Werffios/AntilleanController/internal/common"
)

// Mode selects what Decrypt does when an envelope cannot be decrypted.
type Mode int

const (
	// ModeEnforce rejects anything that is not a valid envelope.
	ModeEnforce Mode = iota

	// ModePermissiveFallback returns the input verbatim when decryption
	// fails. This is a deliberate compatibility mode for legacy clients
	// that still send plaintext credentials; it is NOT a security best
	// practice and should be disabled once those clients are gone.
	ModePermissiveFallback
)

// Codec encrypts and decrypts credential envelopes under a fixed key.
// It is safe for concurrent use: the key and mode never change after New.
type Codec struct {
	key  []byte
	mode Mode
}

// DecodeKey decodes a base64url-encoded key and checks it is a valid AES
// key length. Any other length is a configuration error, surfaced before
// any crypto is attempted.
func DecodeKey(keyB64 string) ([]byte, error) {
	if keyB64 == "" {
		return nil, fmt.Errorf("encryption key is not configured: %w", common.ErrBadKeyLength)
	}
	key, err := base64.URLEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid base64url: %w", common.ErrBadKeyLength)
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("got %d bytes: %w", len(key), common.ErrBadKeyLength)
	}
}

// NewCodec builds a Codec from the configured base64url key and failure mode.
func NewCodec(keyB64 string, mode Mode) (*Codec, error) {
	key, err := DecodeKey(keyB64)
	if err != nil {
		return nil, err
	}
	return &Codec{key: key, mode: mode}, nil
}

// Encrypt packages plaintext into a credential envelope with a fresh random
// IV per call.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := common.GenerateRandByteArray(aes.BlockSize)
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	payload := hex.EncodeToString(iv) + ":" + base64.StdEncoding.EncodeToString(ciphertext)
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

// Decrypt unpacks a credential envelope back into plaintext.
//
// Under ModePermissiveFallback any failure returns the original input
// unchanged with a nil error, so legacy plaintext credentials pass through.
// Under ModeEnforce failures surface as common.ErrInvalidEnvelope.
func (c *Codec) Decrypt(envelope string) (string, error) {
	plaintext, err := c.decrypt(envelope)
	if err != nil {
		if c.mode == ModePermissiveFallback {
			return envelope, nil
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidEnvelope, err)
	}
	return plaintext, nil
}

func (c *Codec) decrypt(envelope string) (string, error) {
	payload, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", err
	}

	ivHex, ctB64, found := strings.Cut(string(payload), ":")
	if !found {
		return "", errors.New("missing iv separator")
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", err
	}
	if len(iv) != aes.BlockSize {
		return "", errors.New("bad iv length")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ctB64)
	if err != nil {
		return "", err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", errors.New("ciphertext is not block-aligned")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
