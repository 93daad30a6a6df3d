package store

import (
	"math/rand"
	"time"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 9
)

// IDGenerator produces short random identifiers. Collisions are not checked
// against existing records; the probability is treated as negligible.
type IDGenerator struct {
	rand *rand.Rand
}

func NewIDGenerator(source rand.Source) *IDGenerator {
	return &IDGenerator{
		rand: rand.New(source),
	}
}

// defaultIDGenerator is shared by all stores that do not inject their own
// randomness source.
var defaultIDGenerator = NewIDGenerator(rand.NewSource(time.Now().UnixNano()))

func (g *IDGenerator) NewID() string {
	id := make([]byte, idLength)
	for i := range id {
		id[i] = idAlphabet[g.rand.Intn(len(idAlphabet))]
	}
	return string(id)
}
