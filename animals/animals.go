// Package animals shows abstraction with interfaces and embedding:
// Animal demands MakeSound from every variant and supplies Sleep through an
// embedded base, and Flyer can be satisfied by an animal or anything else.
package animals

import (
	"fmt"
	"io"
)

// Animal is the capability every concrete animal satisfies.
type Animal interface {
	Name() string
	// MakeSound has no shared behaviour; each variant writes its own.
	MakeSound(w io.Writer)
	Sleep(w io.Writer)
}

// base holds what all animals share. It has no MakeSound, so it does not
// satisfy Animal on its own, and being unexported it cannot be built outside
// this package: the only way to get an Animal is through a variant.
type base struct {
	name string
}

func (b base) Name() string { return b.name }

// Sleep is the default used by every variant that does not override it.
func (b base) Sleep(w io.Writer) {
	fmt.Fprintf(w, "%s is sleeping.\n", b.name)
}

// Dog barks and sleeps the default way.
type Dog struct{ base }

func NewDog(name string) *Dog { return &Dog{base{name}} }

func (d *Dog) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s barks: Woof!\n", d.Name())
}

// Cat meows and sleeps the default way.
type Cat struct{ base }

func NewCat(name string) *Cat { return &Cat{base{name}} }

func (c *Cat) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s meows: Meow!\n", c.Name())
}

// Bird is both an Animal and a Flyer.
type Bird struct{ base }

func NewBird(name string) *Bird { return &Bird{base{name}} }

func (b *Bird) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s chirps: Tweet tweet!\n", b.Name())
}

func (b *Bird) Fly(w io.Writer) {
	fmt.Fprintf(w, "%s flies through the air.\n", b.Name())
}

// BeginLanding replaces DefaultLanding for birds.
func (b *Bird) BeginLanding(w io.Writer) {
	fmt.Fprintf(w, "%s begins an elegant landing approach.\n", b.Name())
}

// Compile-time checks.
var (
	_ Animal = (*Dog)(nil)
	_ Animal = (*Cat)(nil)
	_ Animal = (*Bird)(nil)
	_ Flyer  = (*Bird)(nil)
	_ Flyer  = (*Plane)(nil)
)
