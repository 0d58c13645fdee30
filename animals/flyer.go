package animals

import (
	"fmt"
	"io"
)

// MaxFlightAltitude is the ceiling in metres shared by every Flyer. It
// belongs to the capability, not to any value that implements it.
const MaxFlightAltitude = 10000

// Flyer is the capability of flying. It is independent of Animal.
type Flyer interface {
	Fly(w io.Writer)
	BeginLanding(w io.Writer)
}

// DefaultLanding supplies the stock BeginLanding. Embed it to get the
// default; declare BeginLanding on the outer type to override it.
type DefaultLanding struct{}

func (DefaultLanding) BeginLanding(w io.Writer) {
	fmt.Fprintln(w, "Landing approach initiated...")
}

// Plane flies but is not an animal.
type Plane struct {
	DefaultLanding
	Model string
}

func (p Plane) Fly(w io.Writer) {
	fmt.Fprintf(w, "The %s cruises below %d m.\n", p.Model, MaxFlightAltitude)
}
