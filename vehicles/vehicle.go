// Package vehicles shows reuse by embedding: Car embeds Vehicle, replaces
// Start, keeps Stop and adds OpenTrunk.
//
// Go has one visibility boundary, the package. brand and year are both
// unexported, so Car (same package) reads them directly while other packages
// go through Brand and Year.
package vehicles

import (
	"fmt"
	"io"
)

// Starter is what every vehicle can do.
type Starter interface {
	Start(w io.Writer)
	Stop(w io.Writer)
}

// Vehicle is a brand and a model year that can start and stop.
type Vehicle struct {
	brand string
	year  int
}

func NewVehicle(brand string, year int) *Vehicle {
	return &Vehicle{brand: brand, year: year}
}

func (v *Vehicle) Brand() string { return v.brand }
func (v *Vehicle) Year() int     { return v.year }

func (v *Vehicle) Start(w io.Writer) { fmt.Fprintln(w, "The vehicle starts.") }
func (v *Vehicle) Stop(w io.Writer)  { fmt.Fprintln(w, "The vehicle stops.") }

// Car is a Vehicle with doors and a trunk.
type Car struct {
	*Vehicle
	doors int
}

func NewCar(brand string, year, doors int) *Car {
	return &Car{Vehicle: NewVehicle(brand, year), doors: doors}
}

func (c *Car) DoorCount() int { return c.doors }

// Start shadows Vehicle.Start; c.Vehicle.Start still reaches the original.
func (c *Car) Start(w io.Writer) {
	fmt.Fprintf(w, "The %s car starts its engine.\n", c.brand)
}

func (c *Car) OpenTrunk(w io.Writer) {
	fmt.Fprintln(w, "The car's trunk is opening.")
}

var (
	_ Starter = (*Vehicle)(nil)
	_ Starter = (*Car)(nil)
)
