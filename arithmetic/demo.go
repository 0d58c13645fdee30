package arithmetic

import (
	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
)

// Run performs every configured division in order.
func Run(con *console.Console, sc config.ArithmeticScenario) {
	d := NewDivider(con)
	for i, div := range sc.Divisions {
		if i > 0 {
			con.Println()
		}
		con.Printf("── case %d: %d / %d ──\n", i+1, div.Numerator, div.Denominator)
		d.PerformDivision(div.Numerator, div.Denominator)
	}
}
