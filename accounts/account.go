// Package accounts models a bank account twice: once enforcing its balance
// invariant with typed errors, once (LenientAccount) hiding the balance
// behind accessors and reporting misuse on the console instead.
package accounts

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcodamonte/oop-concepts/internal/logging"
)

// Account is a balance owned by someone. The balance is never negative and
// only changes through Deposit and Withdraw.
type Account struct {
	id      uuid.UUID
	owner   string
	balance decimal.Decimal

	out io.Writer
	log *slog.Logger
}

// Option configures an Account.
type Option func(*Account)

// WithReporter sets where deposits and withdrawals report the new balance.
func WithReporter(w io.Writer) Option {
	return func(a *Account) { a.out = w }
}

// WithLogger sets the structured logger for account events.
func WithLogger(l *slog.Logger) Option {
	return func(a *Account) { a.log = l }
}

// Open creates an account. A negative initial balance is a caller mistake
// and fails with faults.KindInvalidAmount.
func Open(owner string, initial decimal.Decimal, opts ...Option) (*Account, error) {
	if initial.IsNegative() {
		return nil, invalidAmount("open", "initial balance must not be negative: %s", initial)
	}

	a := &Account{
		id:      uuid.New(),
		owner:   owner,
		balance: initial,
		out:     io.Discard,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.log.Info("account.opened", "id", a.id, "owner", owner, "balance", initial.String())
	return a, nil
}

func (a *Account) ID() uuid.UUID            { return a.id }
func (a *Account) Owner() string            { return a.owner }
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit adds amount to the balance. Non-positive amounts fail with
// faults.KindInvalidAmount and leave the balance untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAmount("deposit", "amount must be positive: %s", amount)
	}
	a.balance = a.balance.Add(amount)
	fmt.Fprintf(a.out, "%s EUR deposited. New balance: %s EUR\n", amount, a.balance)
	return nil
}

// Withdraw takes amount from the balance.
//
// It fails with faults.KindInvalidAmount for a non-positive amount and with
// *InsufficientFundsError when amount exceeds the balance. A failed
// withdrawal never changes the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAmount("withdraw", "amount must be positive: %s", amount)
	}
	if amount.GreaterThan(a.balance) {
		return &InsufficientFundsError{
			Requested: amount,
			Balance:   a.balance,
			Shortfall: amount.Sub(a.balance),
		}
	}
	a.balance = a.balance.Sub(amount)
	fmt.Fprintf(a.out, "%s EUR withdrawn. New balance: %s EUR\n", amount, a.balance)
	return nil
}
