package models

// AppSettings is the singleton user-preferences document. Unlike the keyed
// collections it has exactly one instance per user; the dual local/remote
// copies still diverge independently and are reconciled at whole-document
// granularity.
//
// GeminiAPIKey holds the ciphertext form of the user's generative-AI API key
// together with a one-way digest; the plaintext never leaves the device. See
// the crypto package for the encrypt/decrypt/hash collaborator.
type AppSettings struct {
	Theme               string `json:"theme"`
	AutoSubmit          bool   `json:"autoSubmit"`
	Animations          bool   `json:"animations"`
	ReducedMotion       bool   `json:"reducedMotion"`
	BackgroundAnimation bool   `json:"backgroundAnimations"`
	SoundEffects        bool   `json:"soundEffects"`
	ShowTimer           bool   `json:"showTimer"`
	ConfirmBeforeSubmit bool   `json:"confirmBeforeSubmit"`

	// GeminiAPIKey is the encrypted (AES-GCM, base64) API key.
	GeminiAPIKey string `json:"geminiApiKey,omitempty"`
	// GeminiAPIKeyDigest is the SHA-256 digest of the plaintext key, used to
	// detect key changes without ever storing the plaintext remotely.
	GeminiAPIKeyDigest string `json:"geminiApiKeyDigest,omitempty"`
}

// DefaultSettings returns the all-default baseline. A user "has local data"
// only when their settings differ from this baseline.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:               "system",
		AutoSubmit:          false,
		Animations:          true,
		ReducedMotion:       false,
		BackgroundAnimation: true,
		SoundEffects:        false,
		ShowTimer:           true,
		ConfirmBeforeSubmit: true,
	}
}

// IsDefault reports whether s equals the all-default baseline.
func (s AppSettings) IsDefault() bool {
	return s == DefaultSettings()
}
