package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for quotes and stored records.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Static always returns the same ID. Useful where output must be reproducible.
type Static string

func (s Static) NewID() (string, error) {
	return string(s), nil
}
