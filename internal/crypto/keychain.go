// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// keyDerivationSalt is versioned so a future change of scheme can re-derive
// keys without ambiguity about which salt produced a stored blob.
const keyDerivationSalt = "study-keeper-api-key-salt-v1"

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	iterations int
	keyLen     int
}

// NewKeyChainService constructs a [KeyChainService] using PBKDF2-SHA256 with
// 100 000 iterations and a 256-bit derived key.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		iterations: 100_000,
		keyLen:     32, // 256 bits
	}
}

// deriveKey derives the per-user AES key from the opaque user identifier.
// The identifier is stable for the lifetime of the account, so the same user
// always derives the same key and nobody else can.
func (k *keyChainService) deriveKey(userID string) []byte {
	return pbkdf2.Key([]byte(userID), []byte(keyDerivationSalt), k.iterations, k.keyLen, sha256.New)
}

// EncryptAPIKey implements [KeyChainService]. The output blob layout is
// iv (12 bytes) ‖ ciphertext, base64-encoded, so DecryptAPIKey can split the
// IV back out without any side channel.
func (k *keyChainService) EncryptAPIKey(plaintext, userID string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(k.deriveKey(userID))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	blob := gcm.Seal(iv, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptAPIKey implements [KeyChainService]. It unwraps the blob produced by
// [keyChainService.EncryptAPIKey]. The blob must be at least as long as the
// GCM nonce (12 bytes). An authentication-tag mismatch almost always means
// the blob belongs to a different user.
func (k *keyChainService) DecryptAPIKey(ciphertext, userID string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	block, err := aes.NewCipher(k.deriveKey(userID))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	iv, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}

// HashAPIKey implements [KeyChainService].
func (k *keyChainService) HashAPIKey(plaintext string) string {
	if plaintext == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
