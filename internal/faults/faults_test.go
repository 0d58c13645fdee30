package faults

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRecoverable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindArithmetic, true},
		{KindInsufficientFunds, true},
		{KindFileNotFound, true},
		{KindIO, true},
		{KindInvalidArgument, false},
		{KindInvalidAmount, false},
		{KindUnexpected, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.Recoverable(), "kind %s", c.kind)
	}
}

func TestErrorWrapUnwrap(t *testing.T) {
	err := Wrap("read", KindFileNotFound, fs.ErrNotExist)
	require.Error(t, err)

	assert.True(t, errors.Is(err, fs.ErrNotExist), "cause must stay reachable")
	assert.True(t, errors.Is(err, ErrFileNotFound), "kind sentinel must match")
	assert.False(t, errors.Is(err, ErrIO))

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "read", fe.Op)
	assert.Equal(t, KindFileNotFound, fe.Kind)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap("noop", KindIO, nil))
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := New("validate", KindInvalidArgument, "age must not be negative")
	outer := fmt.Errorf("sequence: %w", inner)

	assert.True(t, IsKind(outer, KindInvalidArgument))
	assert.False(t, IsKind(outer, KindIO))
	assert.False(t, IsRecoverable(outer))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindUnexpected))
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg only", &Error{Op: "deposit", Kind: KindInvalidAmount, Msg: "amount must be positive"}, "deposit: amount must be positive"},
		{"with path", &Error{Op: "open", Path: "a.txt", Kind: KindIO, Err: errors.New("boom")}, "open a.txt: boom"},
		{"msg and cause", &Error{Op: "divide", Kind: KindUnexpected, Msg: "recovered panic", Err: errors.New("x")}, "divide: recovered panic: x"},
		{"bare", &Error{Op: "divide", Kind: KindArithmetic}, "divide: arithmetic failure"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.err.Error())
		})
	}
}

func TestRecovered(t *testing.T) {
	assert.NoError(t, Recovered("op", nil))

	err := Recovered("op", "boom")
	assert.True(t, IsKind(err, KindUnexpected))
	assert.Contains(t, err.Error(), "boom")

	var rtErr runtime.Error
	func() {
		defer func() {
			err = Recovered("index", recover())
		}()
		var s []int
		_ = s[3]
	}()
	require.Error(t, err)
	assert.True(t, errors.As(err, &rtErr), "runtime error must stay in the chain")
}
