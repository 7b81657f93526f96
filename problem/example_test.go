package problem_test

import (
	"fmt"

	"github.com/katalvlaran/dictlookup/problem"
)

// ExampleGenerate pulls one problem from the single-key, single-value stream,
// the only dimensions whose layout does not depend on the seed.
func ExampleGenerate() {
	seq, _ := problem.Generate(1, 1, 0)
	p, _ := seq.Next()

	for i := 0; i < 2*p.Size(); i++ {
		e, _ := p.DecodeRow(i)
		fmt.Println(e)
	}
	fmt.Println(p.Answers())
	fmt.Print(p.Adjacency())
	// Output:
	// (0, -)
	// (0, 0)
	// [0]
	// [0, 1]
	// [1, 0]
}

func ExampleFactory_EncodePair() {
	f, _ := problem.NewFactory(2, 3, problem.NewSource(0))
	x, _ := f.EncodePair(1, 2)
	fmt.Println(x)
	// Output: [0 1 0 0 1]
}
