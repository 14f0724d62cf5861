package ident

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator mints opaque record ids. The store takes one so tests can
// substitute a predictable sequence.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random UUID strings.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues "<prefix>-1", "<prefix>-2", ... for deterministic tests.
type SequenceGenerator struct {
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return g.prefix + "-" + strconv.Itoa(g.next)
}
