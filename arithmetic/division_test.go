package arithmetic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

const cleanupNotice = "The cleanup block always runs."

func newTestDivider(opts ...Option) (*Divider, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewDivider(console.New(&out, &errOut), opts...), &out, &errOut
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = Divide(5, 0)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindArithmetic))
	assert.True(t, faults.IsRecoverable(err))
}

func TestPerformDivisionSuccess(t *testing.T) {
	d, out, errOut := newTestDivider()
	d.PerformDivision(10, 2)

	assert.Contains(t, out.String(), "Attempting division: 10 / 2")
	assert.Contains(t, out.String(), "Result: 5")
	assert.Equal(t, 1, strings.Count(out.String(), cleanupNotice))
	assert.Empty(t, errOut.String())
}

func TestPerformDivisionByZero(t *testing.T) {
	for _, numerator := range []int{-7, 0, 5, 1 << 20} {
		d, out, errOut := newTestDivider()
		d.PerformDivision(numerator, 0)

		assert.Contains(t, errOut.String(), "division by zero is not allowed")
		assert.NotContains(t, out.String(), "Result:")
		assert.Equal(t, 1, strings.Count(out.String(), cleanupNotice), "numerator %d", numerator)
		assert.True(t, strings.HasSuffix(out.String(), "After the error-handling block.\n"))
	}
}

func TestPerformDivisionFallback(t *testing.T) {
	cases := []struct {
		name string
		fn   DivideFunc
		want string
	}{
		{
			name: "error",
			fn:   func(int, int) (int, error) { return 0, errors.New("overflow detected") },
			want: "An unexpected error occurred: overflow detected",
		},
		{
			name: "panic",
			fn:   func(int, int) (int, error) { panic("register fault") },
			want: "recovered panic: register fault",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, out, errOut := newTestDivider(WithDivideFunc(c.fn))
			d.PerformDivision(1, 1)

			assert.Contains(t, errOut.String(), c.want)
			assert.NotContains(t, errOut.String(), "division by zero")
			assert.Equal(t, 1, strings.Count(out.String(), cleanupNotice))
		})
	}
}

func TestTeardownRunsOnEveryPath(t *testing.T) {
	calls := 0
	d, _, _ := newTestDivider(WithTeardown(func() { calls++ }))

	d.PerformDivision(10, 2)
	d.PerformDivision(5, 0)
	assert.Equal(t, 2, calls)
}

func TestRun(t *testing.T) {
	var out, errOut bytes.Buffer
	Run(console.New(&out, &errOut), config.ArithmeticScenario{
		Divisions: []config.Division{{Numerator: 10, Denominator: 2}, {Numerator: 5, Denominator: 0}},
	})

	assert.Equal(t, 2, strings.Count(out.String(), cleanupNotice))
	assert.Contains(t, out.String(), "Result: 5")
	assert.Equal(t, 1, strings.Count(errOut.String(), "division by zero"))
}
