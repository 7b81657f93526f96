package bipartite_test

import (
	"fmt"

	"github.com/katalvlaran/dictlookup/bipartite"
	"github.com/katalvlaran/dictlookup/problem"
)

func ExampleColor() {
	adj, _ := problem.CompleteBipartite(2)
	p, _ := bipartite.Color(adj)
	fmt.Println(p.Left, p.Right, bipartite.IsComplete(adj, p))
	// Output: [0 1] [2 3] true
}
