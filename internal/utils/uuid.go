package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. Version 7 identifiers are
// time-ordered, which keeps gateway-side logs sortable.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 identifier
// when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
