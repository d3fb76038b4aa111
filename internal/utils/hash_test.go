// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	got := HashString("secret-password", testHashKey)

	// эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("secret-password"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	hash1 := HashString("secret-password", testHashKey)
	hash2 := HashString("secret-password", testHashKey)

	if hash1 != hash2 {
		t.Errorf("same input must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

func TestHashString_DifferentInputs(t *testing.T) {
	hash1 := HashString("password-one", testHashKey)
	hash2 := HashString("password-two", testHashKey)

	if hash1 == hash2 {
		t.Error("different inputs must produce different hashes")
	}
}

// разные ключи дают разные хеши для одного и того же пароля
func TestHashString_DifferentKeys(t *testing.T) {
	hash1 := HashString("secret-password", "key-one")
	hash2 := HashString("secret-password", "key-two")

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same input")
	}
}
