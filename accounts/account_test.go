package accounts

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOpen(t *testing.T) {
	acct, err := Open("Max", d("100"))
	require.NoError(t, err)
	assert.Equal(t, "Max", acct.Owner())
	assert.True(t, acct.Balance().Equal(d("100")))
	assert.NotEqual(t, uuid.Nil, acct.ID())

	_, err = Open("Test User", d("-50"))
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindInvalidAmount))
	assert.False(t, faults.IsRecoverable(err))
	assert.ErrorIs(t, err, faults.ErrInvalidAmount)
}

func TestDepositReportsNewBalance(t *testing.T) {
	var out bytes.Buffer
	acct, err := Open("Max", d("100"), WithReporter(&out))
	require.NoError(t, err)

	require.NoError(t, acct.Deposit(d("50")))
	assert.True(t, acct.Balance().Equal(d("150")))
	assert.Equal(t, "50 EUR deposited. New balance: 150 EUR\n", out.String())
}

func TestDepositNonPositiveLeavesBalance(t *testing.T) {
	for _, amount := range []string{"0", "-10", "-0.01"} {
		acct, err := Open("Max", d("100"))
		require.NoError(t, err)

		err = acct.Deposit(d(amount))
		require.Error(t, err, amount)
		assert.True(t, faults.IsKind(err, faults.KindInvalidAmount))
		assert.True(t, acct.Balance().Equal(d("100")), "balance changed after deposit of %s", amount)
	}
}

func TestWithdrawShortfall(t *testing.T) {
	cases := []struct{ balance, amount, shortfall string }{
		{"120", "150", "30"},
		{"0", "0.01", "0.01"},
		{"99.99", "100", "0.01"},
		{"100.10", "250.35", "150.25"},
	}
	for _, c := range cases {
		acct, err := Open("Max", d(c.balance))
		require.NoError(t, err)

		err = acct.Withdraw(d(c.amount))
		require.Error(t, err)

		var insufficient *InsufficientFundsError
		require.True(t, errors.As(err, &insufficient))
		assert.True(t, insufficient.Shortfall.Equal(d(c.shortfall)),
			"shortfall %s, want %s", insufficient.Shortfall, c.shortfall)
		assert.True(t, acct.Balance().Equal(d(c.balance)), "balance must stay %s", c.balance)

		assert.ErrorIs(t, err, faults.ErrInsufficientFunds)
		assert.True(t, faults.IsRecoverable(err))
	}
}

func TestWithdraw(t *testing.T) {
	var out bytes.Buffer
	acct, err := Open("Max", d("150"), WithReporter(&out))
	require.NoError(t, err)

	require.NoError(t, acct.Withdraw(d("30")))
	assert.True(t, acct.Balance().Equal(d("120")))
	assert.Contains(t, out.String(), "30 EUR withdrawn. New balance: 120 EUR")

	// the whole balance may be withdrawn
	require.NoError(t, acct.Withdraw(d("120")))
	assert.True(t, acct.Balance().IsZero())

	err = acct.Withdraw(d("-5"))
	assert.True(t, faults.IsKind(err, faults.KindInvalidAmount))
}

func TestRunScenario(t *testing.T) {
	var out, errOut, logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	cfg, err := config.Default()
	require.NoError(t, err)

	Run(console.New(&out, &errOut), log, cfg.Accounts)

	assert.Contains(t, out.String(), "50 EUR deposited. New balance: 150 EUR")
	assert.Contains(t, out.String(), "30 EUR withdrawn. New balance: 120 EUR")
	assert.Contains(t, out.String(), "Current balance of Max Mustermann: 120 EUR")
	assert.Contains(t, errOut.String(), "Missing amount: 30 EUR")

	assert.Contains(t, logs.String(), "account.opened")
	assert.Contains(t, logs.String(), "account.invalid_amount")
	assert.Contains(t, logs.String(), "initial balance must not be negative")
}
