// Package crypto encrypts recruiter provider credentials at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize = 32
	// Bumping the info string rotates every derived key.
	hkdfInfo = "smartassess/llm-api-key/v1"
)

var (
	ErrInvalidKey       = errors.New("invalid encryption key: must not be empty")
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or wrong key")
)

// Encryptor is what the onboarding workflow needs from this package.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
}

// CredentialEncryptor seals values with AES-256-GCM. The output is
// base64(nonce || ciphertext || tag).
type CredentialEncryptor struct {
	gcm cipher.AEAD
}

// NewCredentialEncryptor derives a 256-bit key from the configured secret with
// HKDF-SHA256.
func NewCredentialEncryptor(secret string) (*CredentialEncryptor, error) {
	if secret == "" {
		return nil, ErrInvalidKey
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &CredentialEncryptor{gcm: gcm}, nil
}

func (e *CredentialEncryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("refusing to encrypt empty credential")
	}

	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := e.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *CredentialEncryptor) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: base64 decode failed", ErrDecryptionFailed)
	}

	nonceSize := e.gcm.NonceSize()
	if len(data) < nonceSize+e.gcm.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrDecryptionFailed)
	}
	return string(plaintext), nil
}
