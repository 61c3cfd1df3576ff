package core

import "github.com/google/uuid"

// GenerateID returns a fresh opaque identifier usable as a node or edge store
// key. Identifiers are 128-bit random UUIDs, unique against all other tokens
// produced in the process with overwhelming probability.
// Pure generation: no side effects beyond randomness consumption.
func GenerateID() string {
	return uuid.NewString()
}
