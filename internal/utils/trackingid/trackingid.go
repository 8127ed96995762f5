// Package trackingid produces human-readable tracking identifiers in the
// display form PFX-NNNN-NNNN-NN (letter prefix, two 4-digit groups, one
// 2-digit group). The identifier is treated as an opaque unique string by the
// rest of the system; uniqueness against stored shipments is guaranteed by the
// store's compare-and-insert create plus the service's regeneration retry.
package trackingid

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultPrefix is the prefix used for tracking IDs when none is configured.
const DefaultPrefix = "DPC"

// Generator produces tracking identifiers with a fixed prefix.
type Generator struct {
	prefix string
}

// New creates a Generator. An empty prefix falls back to DefaultPrefix.
func New(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// Generate returns a fresh identifier, e.g. "DPC-4821-9037-56". Digit groups
// come from crypto/rand so IDs are not guessable from prior ones.
func (g *Generator) Generate() (string, error) {
	a, err := randomInRange(1000, 9999)
	if err != nil {
		return "", err
	}
	b, err := randomInRange(1000, 9999)
	if err != nil {
		return "", err
	}
	c, err := randomInRange(10, 99)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%d-%d", g.prefix, a, b, c), nil
}

// randomInRange returns a uniform random int64 in [min, max].
func randomInRange(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return min + n.Int64(), nil
}
