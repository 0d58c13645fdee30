package validation

import (
	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
)

// Run validates the scenario sequence, which short-circuits on the first
// invalid age, then each separate age on its own.
func Run(con *console.Console, sc config.ValidationScenario) {
	v := NewAgeValidator(con.Out)

	con.Printf("Validating sequence %v:\n", sc.Sequence)
	if err := v.ValidateAll(sc.Sequence...); err != nil {
		con.Errorf("Validation error: %v", err)
	}

	for _, age := range sc.Separate {
		con.Printf("\nValidating age %d on its own:\n", age)
		if err := v.ValidateAge(age); err != nil {
			con.Errorf("Validation error: %v", err)
		}
	}
}
