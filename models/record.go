package models

// Keyed is implemented by every entity that belongs to a synchronized
// collection. The key is a globally-unique string identifier assigned once at
// creation and never reassigned; record identity is by key alone, never by
// structural equality.
type Keyed interface {
	Key() string
}

// Collection names as they appear in the remote store path
// users/{uid}/{collection}/{recordId}.
const (
	CollectionQuizzes    = "quizzes"
	CollectionSessions   = "sessions"
	CollectionFlashcards = "flashcards"

	// CollectionSettings holds exactly one document, [SettingsDocumentID].
	CollectionSettings = "settings"

	// SettingsDocumentID is the id of the singleton settings document.
	SettingsDocumentID = "app"
)

// Collections lists every keyed collection in the order the sync manager
// scans them.
var Collections = []string{CollectionQuizzes, CollectionSessions, CollectionFlashcards}
