// Package ident generates the identifiers used across the app:
// transaction references like ZRH-K3N9PQ2X and card ids.
package ident

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/zerah-labs/zerah/internal/constants"
)

// Generator is the id capability handed to services, so tests can pin
// the generated values.
type Generator interface {
	// Ref returns prefix + "-" + an 8-char uppercase alphanumeric suffix.
	Ref(prefix string) string
	// CardID returns a unique card identifier.
	CardID() string
}

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomGenerator is the production Generator, backed by crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) Ref(prefix string) string {
	suffix := make([]byte, constants.RefSuffixLen)
	max := big.NewInt(int64(len(refAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; fall back to a fixed character rather than panic.
			suffix[i] = refAlphabet[0]
			continue
		}
		suffix[i] = refAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func (g *RandomGenerator) CardID() string {
	return uuid.NewString()
}
