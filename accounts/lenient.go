package accounts

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// LenientAccount keeps its balance unexported: callers read it through
// Balance and change it only through Deposit and Withdraw, which refuse bad
// input by printing a notice rather than returning an error.
type LenientAccount struct {
	balance decimal.Decimal
	out     io.Writer
}

// NewLenient creates an account. A negative initial balance is clamped to
// zero and a notice is printed.
func NewLenient(initial decimal.Decimal, out io.Writer) *LenientAccount {
	a := &LenientAccount{out: out}
	if initial.IsNegative() {
		fmt.Fprintln(out, "The initial balance must not be negative. Balance set to 0.")
		return a
	}
	a.balance = initial
	return a
}

func (a *LenientAccount) Balance() decimal.Decimal { return a.balance }

func (a *LenientAccount) Deposit(amount decimal.Decimal) {
	if !amount.IsPositive() {
		fmt.Fprintln(a.out, "The deposit amount must be positive.")
		return
	}
	a.balance = a.balance.Add(amount)
	fmt.Fprintf(a.out, "%s EUR deposited. New balance: %s EUR\n", amount, a.balance)
}

func (a *LenientAccount) Withdraw(amount decimal.Decimal) {
	switch {
	case !amount.IsPositive():
		fmt.Fprintln(a.out, "The withdrawal amount must be positive.")
	case a.balance.GreaterThanOrEqual(amount):
		a.balance = a.balance.Sub(amount)
		fmt.Fprintf(a.out, "%s EUR withdrawn. New balance: %s EUR\n", amount, a.balance)
	default:
		fmt.Fprintf(a.out, "Insufficient funds. Withdrawal of %s EUR not possible.\n", amount)
	}
}
