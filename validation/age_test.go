package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

func TestValidateAge(t *testing.T) {
	cases := []struct {
		age     int
		wantErr bool
		warn    bool
	}{
		{-5, true, false},
		{-1, true, false},
		{0, false, false},
		{30, false, false},
		{120, false, false},
		{121, false, true},
		{130, false, true},
	}
	for _, c := range cases {
		var out bytes.Buffer
		err := NewAgeValidator(&out).ValidateAge(c.age)

		if c.wantErr {
			require.Error(t, err, "age %d", c.age)
			assert.ErrorIs(t, err, faults.ErrInvalidArgument)
			assert.False(t, faults.IsRecoverable(err))
			assert.Empty(t, out.String())
			continue
		}
		require.NoError(t, err, "age %d", c.age)
		assert.Equal(t, c.warn, bytes.Contains(out.Bytes(), []byte("Warning")), "age %d", c.age)
		assert.Contains(t, out.String(), "is valid.")
	}
}

func TestValidateAllShortCircuits(t *testing.T) {
	var out bytes.Buffer
	err := NewAgeValidator(&out).ValidateAll(25, -5, 30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "got -5")
	assert.Contains(t, out.String(), "Age 25 is valid.")
	assert.NotContains(t, out.String(), "Age 30")
}

func TestRun(t *testing.T) {
	var out, errOut bytes.Buffer
	Run(console.New(&out, &errOut), config.ValidationScenario{
		Sequence: []int{25, -5, 30},
		Separate: []int{130},
	})

	assert.Contains(t, errOut.String(), "Validation error")
	assert.NotContains(t, out.String(), "Age 30 is valid.")
	assert.Contains(t, out.String(), "Warning: the age is very high: 130")
	assert.Contains(t, out.String(), "Age 130 is valid.")
}
