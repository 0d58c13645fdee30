package animals

import "github.com/marcodamonte/oop-concepts/internal/console"

// Run walks the animals through their shared and own behaviour, then lands
// a bird and a plane through Flyer.
func Run(con *console.Console) {
	bello := NewDog("Bello")
	minzi := NewCat("Minzi")
	tweety := NewBird("Tweety")
	w := con.Out

	bello.MakeSound(w)
	bello.Sleep(w)
	minzi.MakeSound(w)
	minzi.Sleep(w)
	tweety.MakeSound(w)
	tweety.Sleep(w)
	tweety.BeginLanding(w)
	tweety.Fly(w)

	con.Printf("Maximum flight altitude: %d m\n", MaxFlightAltitude)

	con.Println("\n── Through Animal ──")
	Chorus(con, []Animal{bello, minzi, tweety})

	con.Println("\n── Through Flyer ──")
	for _, f := range []Flyer{tweety, &Plane{Model: "A320"}} {
		f.Fly(w)
		f.BeginLanding(w)
	}
}

// Chorus has every animal introduce itself and make its sound.
func Chorus(con *console.Console, zoo []Animal) {
	for _, a := range zoo {
		con.Printf("%s says: ", a.Name())
		a.MakeSound(con.Out)
	}
}
