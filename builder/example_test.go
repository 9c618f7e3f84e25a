// SPDX-License-Identifier: MIT
// Runnable examples for the builder package.
package builder_test

import (
	"fmt"

	"github.com/kvlaran/densegraph/builder"
)

// ExampleNew stages a directed triangle and finalizes it.
func ExampleNew() {
	b := builder.New(true, false, false)
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	v2 := b.AddVertex()
	b.AddEdge(v0, v1)
	b.AddEdge(v1, v2)
	b.AddEdge(v2, v0)

	g := b.Build()
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 3 3
}

// ExampleNewMutator builds a graph purely by named vertices and reads the
// names back through the realized property.
func ExampleNewMutator() {
	b := builder.New(false, false, false)
	names, _ := builder.WithVertexProperty[string](b, nil)
	m := builder.NewMutator[string, struct{}](b, names, nil)

	m.AddEdgeBetween("amsterdam", "berlin")
	m.AddEdgeBetween("berlin", "warsaw")

	g := b.Build()
	p := names.Property()
	for _, v := range g.Vertices() {
		name, _ := p.Get(v)
		fmt.Println(v, name)
	}
	// Output:
	// 0 amsterdam
	// 1 berlin
	// 2 warsaw
}
