package rdfxml

import "fmt"

// blankNodeGenerator mints fresh blank node identifiers within a
// single parse. Every call yields a distinct identifier.
type blankNodeGenerator struct {
	counter uint64
}

// next generates the next blank node identifier.
func (g *blankNodeGenerator) next() BlankNode {
	g.counter++
	return BlankNode{ID: fmt.Sprintf("genid%d", g.counter)}
}
