package store

import (
	"math/rand"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func TestNewID(t *testing.T) {

	g := NewIDGenerator(rand.NewSource(1))

	seen := map[string]bool{}
	n := 1000
	for i := 0; i < n; i++ {
		id := g.NewID()

		AssertEqual(len(id), idLength)
		for _, c := range id {
			AssertTrue(strings.ContainsRune(idAlphabet, c))
		}

		seen[id] = true
	}

	// Sanity check, not a formal randomness proof
	AssertEqual(len(seen), n)
}

func TestNewIDDeterministicSource(t *testing.T) {

	a := NewIDGenerator(rand.NewSource(7))
	b := NewIDGenerator(rand.NewSource(7))

	AssertEqual(a.NewID(), b.NewID())
}
