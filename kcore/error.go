package kcore

import (
	"errors"
	"fmt"
)

// Wrap adds context to err while keeping it matchable with errors.Is and
// errors.As.
func Wrap(err error, msg string) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Expect panics when err is not nil. It is reserved for failures the caller
// considers impossible.
func Expect(err error, msg string) {
	if err != nil {
		if msg != "" {
			err = Wrap(err, msg)
		}
		panic(err)
	}
}

var ErrAssert = errors.New("assertion error")

func Assert(cond bool, msg string) {
	if !cond {
		err := ErrAssert
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		panic(err)
	}
}

// Must unwraps a (value, error) pair, panicking when the error is not nil.
func Must[T any](val T, err error) T {
	Expect(err, "")
	return val
}
