package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/thariapp/thari_backend/internal/apperrors"
)

// EnvelopePrefix marks an encrypted backup payload. Everything after the
// prefix is base64 of salt(16B) || iv(12B) || ciphertext+tag.
const EnvelopePrefix = "THARI_AES_GCM:"

const (
	envelopeSaltLen   = 16
	envelopeNonceLen  = 12
	pbkdf2Iterations  = 100_000
	envelopeKeyLength = 32 // AES-256
)

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, envelopeKeyLength, sha256.New)
}

// SealEnvelope encrypts plaintext with a password-derived AES-256-GCM key
// and wraps it in the prefixed envelope format.
func SealEnvelope(plaintext []byte, password string) (string, error) {
	salt, err := SecureRandomBytes(envelopeSaltLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce, err := SecureRandomBytes(envelopeNonceLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return EnvelopePrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// OpenEnvelope decrypts a payload produced by SealEnvelope. Every failure
// mode, from a missing prefix to an authentication failure caused by a wrong
// password, yields the same apperrors.ErrBadCipher so the caller cannot tell
// which part failed.
func OpenEnvelope(payload, password string) ([]byte, error) {
	if !strings.HasPrefix(payload, EnvelopePrefix) {
		return nil, apperrors.ErrBadCipher
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, EnvelopePrefix))
	if err != nil {
		return nil, apperrors.ErrBadCipher
	}
	if len(blob) < envelopeSaltLen+envelopeNonceLen {
		return nil, apperrors.ErrBadCipher
	}

	salt := blob[:envelopeSaltLen]
	nonce := blob[envelopeSaltLen : envelopeSaltLen+envelopeNonceLen]
	ciphertext := blob[envelopeSaltLen+envelopeNonceLen:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, apperrors.ErrBadCipher
	}
	return plaintext, nil
}

// IsEnvelope reports whether the payload carries the encrypted prefix.
func IsEnvelope(payload string) bool {
	return strings.HasPrefix(payload, EnvelopePrefix)
}

// LooksLikeJSON reports whether the payload is plausibly a legacy raw-JSON
// export (starts with '{' or '[').
func LooksLikeJSON(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
