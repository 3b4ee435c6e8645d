package scratch_test

import (
	"fmt"

	"github.com/cwbudde/algo-scratch/dual"
	"github.com/cwbudde/algo-scratch/scratch"
)

func ExampleCache() {
	c, _ := scratch.New(5, scratch.WithChunk(0))
	fmt.Println("capacity:", c.Capacity())

	v, _ := c.Dual(dual.Chunk(3))
	fmt.Println("grown capacity:", c.Capacity())
	v.SetValue(0, 1.5)
	v.SetPartial(0, 0, 1)

	fmt.Println("plain view:", c.Plain()[:2])

	// Output:
	// capacity: 5
	// grown capacity: 20
	// plain view: [1.5 1]
}

func ExampleGet() {
	c, _ := scratch.New(3, scratch.WithChunk(2))

	// A plain representative selects the plain view.
	v, _ := scratch.Get(c, []float64{1, 2, 3})
	fmt.Printf("%T\n", v)

	// A dual-tagged representative selects a matching dual view.
	v, _ = scratch.Get(c, dual.Numbers(3, 2))
	fmt.Printf("%T\n", v)

	// Output:
	// scratch.Plain
	// scratch.DualView
}

func ExampleLazy() {
	l := scratch.NewLazy()

	a, _ := l.Get(make([]float64, 4))
	b, _ := l.Get(make([]float64, 4))
	c, _ := l.Get(make([]float64, 8))

	fmt.Println(a.Len(), b.Len(), c.Len())
	fmt.Println("distinct buffers:", l.Size())

	// Output:
	// 4 4 8
	// distinct buffers: 2
}
