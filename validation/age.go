// Package validation raises errors explicitly when input breaks a rule.
package validation

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// MaxPlausibleAge is the age above which validation warns but still passes.
const MaxPlausibleAge = 120

var (
	validate = validator.New()

	ageRule       = "gte=0"
	plausibleRule = fmt.Sprintf("lte=%d", MaxPlausibleAge)
)

// AgeValidator checks ages and prints its verdicts to out.
type AgeValidator struct {
	out io.Writer
}

// NewAgeValidator returns an AgeValidator printing to out.
func NewAgeValidator(out io.Writer) *AgeValidator {
	return &AgeValidator{out: out}
}

// ValidateAge fails with faults.KindInvalidArgument for a negative age.
// An age above MaxPlausibleAge prints a warning and is accepted.
func (v *AgeValidator) ValidateAge(age int) error {
	if validate.Var(age, ageRule) != nil {
		return faults.New("validate age", faults.KindInvalidArgument,
			fmt.Sprintf("age must not be negative, got %d", age))
	}
	if validate.Var(age, plausibleRule) != nil {
		fmt.Fprintf(v.out, "Warning: the age is very high: %d\n", age)
	}
	fmt.Fprintf(v.out, "Age %d is valid.\n", age)
	return nil
}

// ValidateAll validates ages in order and stops at the first failure; the
// ages after it are not looked at.
func (v *AgeValidator) ValidateAll(ages ...int) error {
	for _, age := range ages {
		if err := v.ValidateAge(age); err != nil {
			return err
		}
	}
	return nil
}
