package accounts

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// Run opens the scenario account, applies its deposits then withdrawals,
// and stops at the first failure. Insufficient funds are handled by showing
// the shortfall; invalid amounts are only logged.
func Run(con *console.Console, log *slog.Logger, sc config.AccountScenario) {
	acct, err := transact(con, log, sc)
	if err != nil {
		report(con, log, err)
	}
	if acct != nil {
		con.Printf("Current balance of %s: %s EUR\n", acct.Owner(), acct.Balance())
	}

	con.Println("\nOpening an account with a negative initial balance:")
	if _, err := Open(sc.InvalidOwner, sc.InvalidInitial, WithLogger(log)); err != nil {
		report(con, log, err)
	}
}

func transact(con *console.Console, log *slog.Logger, sc config.AccountScenario) (*Account, error) {
	acct, err := Open(sc.Owner, sc.Initial, WithReporter(con.Out), WithLogger(log))
	if err != nil {
		return nil, err
	}
	for _, amount := range sc.Deposits {
		if err := acct.Deposit(amount); err != nil {
			return acct, err
		}
	}
	for _, amount := range sc.Withdrawals {
		if err := acct.Withdraw(amount); err != nil {
			return acct, err
		}
	}
	return acct, nil
}

func report(con *console.Console, log *slog.Logger, err error) {
	var insufficient *InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		con.Errorf("Error: %v", err)
		con.Errorf("Missing amount: %s EUR", insufficient.Shortfall)
	case faults.IsKind(err, faults.KindInvalidAmount):
		log.Error("account.invalid_amount", "err", err)
	default:
		con.Errorf("An unexpected error occurred: %v", err)
	}
}

// RunEncapsulation drives a LenientAccount through the scenario.
func RunEncapsulation(con *console.Console, sc config.EncapsulationScenario) {
	acct := NewLenient(sc.Initial, con.Out)
	con.Printf("Initial balance: %s EUR\n", acct.Balance())
	apply(sc.Deposits, acct.Deposit)
	apply(sc.Withdrawals, acct.Withdraw)
	con.Printf("Final balance: %s EUR\n", acct.Balance())
}

func apply(amounts []decimal.Decimal, fn func(decimal.Decimal)) {
	for _, a := range amounts {
		fn(a)
	}
}
