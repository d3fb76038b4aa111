package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the client-side encryption collaborator for the one
// sensitive settings field (the generative-AI API key). It knows nothing
// about the network, the database, or users; its only job is to make sure the
// plaintext key never leaves the device.
//
// Flow:
//
//	key       = derive(userID)                 (PBKDF2, static salt)
//	blob      = EncryptAPIKey(plain, userID)   (AES-GCM, iv ‖ ciphertext, base64)
//	plain     = DecryptAPIKey(blob, userID)
//	digest    = HashAPIKey(plain)              (SHA-256, hex)
//
// Only blob and digest are ever synchronized to the remote store.
type KeyChainService interface {
	// EncryptAPIKey encrypts plaintext with a key derived from userID.
	// Returns a base64 blob with the random IV prepended, or "" for empty
	// input.
	EncryptAPIKey(plaintext, userID string) (string, error)

	// DecryptAPIKey reverses EncryptAPIKey. Fails if the blob was produced
	// for a different user or is corrupted (authentication-tag mismatch).
	DecryptAPIKey(ciphertext, userID string) (string, error)

	// HashAPIKey returns the hex-encoded SHA-256 digest of plaintext, or ""
	// for empty input. The digest detects key changes without storing the
	// plaintext remotely.
	HashAPIKey(plaintext string) string
}
