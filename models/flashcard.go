package models

import "time"

// Flashcard is a single front/back card inside a deck.
type Flashcard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardDeck is a named set of flashcards. The deck, not the individual
// card, is the unit of synchronization.
type FlashcardDeck struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cards       []Flashcard `json:"cards"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Tags        []string    `json:"tags,omitempty"`
}

// Key implements [Keyed].
func (d FlashcardDeck) Key() string { return d.ID }
