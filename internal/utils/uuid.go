package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDs for request trace IDs. V7 keeps
// concurrent log streams sortable by arrival; if V7 generation fails (the
// random source is exhausted) it falls back to a random V4.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
