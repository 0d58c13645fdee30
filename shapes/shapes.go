// Package shapes shows the two kinds of polymorphism Go offers:
// dynamic dispatch through an interface, and choosing an operation at compile
// time from the static types of its arguments.
package shapes

import (
	"fmt"
	"io"
)

// Shape is anything that can draw itself.
type Shape interface {
	Draw(w io.Writer)
}

// Circle is a Shape with a colour.
type Circle struct {
	Color string
}

func (c Circle) Draw(w io.Writer) {
	fmt.Fprintf(w, "Drawing a %s circle.\n", c.Color)
}

// Rectangle is a Shape with integer sides.
type Rectangle struct {
	Width, Height int
}

func (r Rectangle) Draw(w io.Writer) {
	fmt.Fprintf(w, "Drawing a rectangle with width %d and height %d.\n", r.Width, r.Height)
}

// DrawAll draws every shape in order. Each call goes to the concrete
// type's Draw.
func DrawAll(w io.Writer, shapes []Shape) {
	for _, s := range shapes {
		s.Draw(w)
	}
}
