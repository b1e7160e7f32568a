// Package orderid issues the human-readable identifiers stamped on orders.
package orderid

import (
	"fmt"
	"math/rand/v2"
)

// Prefix precedes every generated order identifier.
const Prefix = "ORD-"

// Generator issues order identifiers. Generated ids are random, so callers
// must handle duplicates at the store (unique constraint plus regeneration).
type Generator interface {
	Generate() string
}

type randomGenerator struct{}

// NewGenerator returns a Generator producing ids of the form ORD-XXXXXX, where
// XXXXXX is a random 6-digit number in [100000, 999999].
func NewGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) Generate() string {
	return fmt.Sprintf("%s%d", Prefix, 100000+rand.IntN(900000))
}
