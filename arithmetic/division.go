// Package arithmetic shows error handling around an integer division:
// a local handler for the expected failure, a fallback for anything else,
// and a cleanup step that runs on every exit path.
package arithmetic

import (
	"errors"

	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// ErrDivisionByZero is returned by Divide when the denominator is zero.
var ErrDivisionByZero = faults.New("divide", faults.KindArithmetic, "division by zero")

// DivideFunc computes numerator / denominator.
type DivideFunc func(numerator, denominator int) (int, error)

// Divide is the checked integer division: a zero denominator is reported as
// an error instead of a runtime panic.
func Divide(numerator, denominator int) (int, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}
	return numerator / denominator, nil
}

// Divider runs divisions and reports every outcome on its console.
type Divider struct {
	con      *console.Console
	divide   DivideFunc
	teardown []func()
}

// Option configures a Divider.
type Option func(*Divider)

// WithDivideFunc replaces the division itself. Used to exercise the fallback
// handler with failures other than a zero denominator.
func WithDivideFunc(fn DivideFunc) Option {
	return func(d *Divider) { d.divide = fn }
}

// WithTeardown registers a function run by the cleanup step, after every
// division, in registration order.
func WithTeardown(fn func()) Option {
	return func(d *Divider) { d.teardown = append(d.teardown, fn) }
}

// NewDivider returns a Divider that reports on con and divides with Divide
// unless WithDivideFunc says otherwise.
func NewDivider(con *console.Console, opts ...Option) *Divider {
	d := &Divider{con: con, divide: Divide}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PerformDivision divides and prints the result. Failures are handled here
// and never reach the caller:
//
//   - a zero denominator prints the division-by-zero notice;
//   - any other error, or a panic inside the division, prints the fallback
//     notice with its message.
//
// The cleanup notice is printed exactly once per call, whatever happened.
func (d *Divider) PerformDivision(numerator, denominator int) {
	func() {
		defer d.cleanup()

		d.con.Printf("Attempting division: %d / %d\n", numerator, denominator)
		result, err := d.safeDivide(numerator, denominator)
		switch {
		case err == nil:
			d.con.Printf("Result: %d\n", result)
		case errors.Is(err, faults.ErrArithmetic):
			d.con.Errorf("Error: division by zero is not allowed!")
		default:
			d.con.Errorf("An unexpected error occurred: %v", err)
		}
	}()
	d.con.Println("After the error-handling block.")
}

// safeDivide turns a panic raised by the division into an error, so the
// fallback branch sees it like any other failure.
func (d *Divider) safeDivide(numerator, denominator int) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = faults.Recovered("divide", r)
		}
	}()
	return d.divide(numerator, denominator)
}

func (d *Divider) cleanup() {
	d.con.Println("The cleanup block always runs.")
	for _, fn := range d.teardown {
		fn()
	}
}
