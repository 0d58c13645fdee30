// Package faults is the error taxonomy shared by the demos.
//
// Go has no checked exceptions, so "checked-ness" becomes a documented
// contract: an operation that can fail returns an error, and the Kind carried
// by that error tells the caller whether it is expected to recover.
package faults

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained category for a failure.
type Kind string

const (
	KindArithmetic        Kind = "arithmetic_failure"
	KindInvalidArgument   Kind = "invalid_argument"
	KindInvalidAmount     Kind = "invalid_amount"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindFileNotFound      Kind = "file_not_found"
	KindIO                Kind = "io_failure"
	KindUnexpected        Kind = "unexpected"
)

// Recoverable reports whether the immediate caller is expected to handle a
// failure of this kind and carry on.
//
// Misuse kinds (invalid argument/amount) are not: they signal a programming or
// input mistake and are only surfaced at the top level.
func (k Kind) Recoverable() bool {
	switch k {
	case KindArithmetic, KindInsufficientFunds, KindFileNotFound, KindIO:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

// Sentinels, one per kind. Every *Error matches the sentinel of its kind with
// errors.Is, so callers can branch without importing the concrete type.
var (
	ErrArithmetic        = errors.New("arithmetic failure")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrFileNotFound      = errors.New("file not found")
	ErrIO                = errors.New("i/o failure")
	ErrUnexpected        = errors.New("unexpected failure")
)

// Sentinel returns the sentinel error for k.
func (k Kind) Sentinel() error {
	switch k {
	case KindArithmetic:
		return ErrArithmetic
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindInvalidAmount:
		return ErrInvalidAmount
	case KindInsufficientFunds:
		return ErrInsufficientFunds
	case KindFileNotFound:
		return ErrFileNotFound
	case KindIO:
		return ErrIO
	default:
		return ErrUnexpected
	}
}

// Error is an operation error: it captures the operation, an optional
// resource and the cause, in the style of os.PathError.
type Error struct {
	Op   string
	Kind Kind
	Path string // optional
	Msg  string // optional, used when there is no underlying cause
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += " " + e.Path
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", base, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", base, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", base, e.Err)
	default:
		return fmt.Sprintf("%s: %s", base, e.Kind.Sentinel())
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind.Sentinel()
}

// New builds an *Error without an underlying cause.
func New(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg}
}

// Wrap builds an *Error around err. It returns nil when err is nil.
func Wrap(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first categorised error in err's chain.
// Uncategorised errors are KindUnexpected.
func KindOf(err error) Kind {
	var k interface{ FaultKind() Kind }
	if errors.As(err, &k) {
		return k.FaultKind()
	}
	return KindUnexpected
}

// FaultKind lets *Error satisfy the same lookup as domain error types.
func (e *Error) FaultKind() Kind { return e.Kind }

// IsKind helps callers classify errors without depending on the concrete type.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRecoverable reports whether err belongs to a recoverable kind.
func IsRecoverable(err error) bool {
	return err != nil && KindOf(err).Recoverable()
}

// Recovered converts a recovered panic value into a KindUnexpected error.
// It returns nil for a nil value.
func Recovered(op string, r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return &Error{Op: op, Kind: KindUnexpected, Msg: "recovered panic", Err: err}
	}
	return &Error{Op: op, Kind: KindUnexpected, Msg: fmt.Sprintf("recovered panic: %v", r)}
}
