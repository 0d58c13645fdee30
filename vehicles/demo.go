package vehicles

import "github.com/marcodamonte/oop-concepts/internal/console"

// Run starts a plain Vehicle, then a Car, whose Start replaces the
// vehicle's while Stop is promoted unchanged.
func Run(con *console.Console) {
	w := con.Out

	v := NewVehicle("Unknown", 2020)
	v.Start(w)
	con.Printf("Brand: %s, year: %d\n", v.Brand(), v.Year())

	con.Println("\n── Car ──")
	car := NewCar("BMW", 2023, 4)
	car.Start(w)
	car.Stop(w)
	car.OpenTrunk(w)
	con.Printf("Brand: %s, year: %d, doors: %d\n", car.Brand(), car.Year(), car.DoorCount())

	con.Println("\n── Through Starter ──")
	for _, s := range []Starter{v, car} {
		s.Start(w)
	}
}
