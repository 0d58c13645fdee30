package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// InsufficientFundsError is the recoverable failure of a withdrawal larger
// than the balance. It carries the data a caller needs to react to it.
type InsufficientFundsError struct {
	Requested decimal.Decimal
	Balance   decimal.Decimal
	// Shortfall is Requested - Balance.
	Shortfall decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for withdrawal of %s EUR: %s EUR missing",
		e.Requested, e.Shortfall)
}

// Is makes errors.Is(err, faults.ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == faults.ErrInsufficientFunds
}

func (e *InsufficientFundsError) FaultKind() faults.Kind { return faults.KindInsufficientFunds }

func invalidAmount(op, format string, a ...any) error {
	return faults.New(op, faults.KindInvalidAmount, fmt.Sprintf(format, a...))
}
