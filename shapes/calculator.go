package shapes

import (
	"fmt"
	"io"
)

// Calculator has one addition per argument list. Go has no overloading, so
// each signature gets its own name and the compiler picks it from the call
// site; nothing is decided at run time.
type Calculator struct {
	out io.Writer
}

// NewCalculator returns a Calculator that prints which addition ran to out.
func NewCalculator(out io.Writer) *Calculator {
	return &Calculator{out: out}
}

// Add sums two ints.
func (c *Calculator) Add(a, b int) int {
	fmt.Fprintln(c.out, "Add(int, int) called")
	return a + b
}

// Add3 sums three ints.
func (c *Calculator) Add3(x, y, z int) int {
	fmt.Fprintln(c.out, "Add3(int, int, int) called")
	return x + y + z
}

// AddFloat sums two float64s.
func (c *Calculator) AddFloat(a, b float64) float64 {
	fmt.Fprintln(c.out, "AddFloat(float64, float64) called")
	return a + b
}

// Number is the type set Sum accepts.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum is the generic form: one body, instantiated per argument type at
// compile time.
func Sum[T Number](xs ...T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}
