package shapes

import "github.com/marcodamonte/oop-concepts/internal/console"

// Run draws a circle and a rectangle through the Shape interface, then calls
// each Calculator addition and Sum.
func Run(con *console.Console) {
	con.Println("── Dynamic dispatch through Shape ──")
	var first Shape = Circle{Color: "Red"}
	var second Shape = Rectangle{Width: 5, Height: 10}
	first.Draw(con.Out)
	second.Draw(con.Out)

	DrawAll(con.Out, []Shape{
		Circle{Color: "Blue"},
		Rectangle{Width: 3, Height: 7},
		Circle{Color: "Green"},
	})

	con.Println("\n── Compile-time selection ──")
	calc := NewCalculator(con.Out)
	con.Printf("Sum 1: %d\n", calc.Add(5, 10))
	con.Printf("Sum 2: %d\n", calc.Add3(5, 10, 15))
	con.Printf("Sum 3: %g\n", calc.AddFloat(2.5, 3.7))
	con.Printf("Generic Sum[int]: %d, Sum[float64]: %g\n", Sum(5, 10, 15), Sum(2.5, 3.7))
}
