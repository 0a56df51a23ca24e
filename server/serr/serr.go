// Package serr holds the errors returned by the STAG server's service layer.
// The API layer picks an HTTP status by checking them with errors.Is.
package serr

import (
	"errors"
	"slices"
)

var (
	// ErrNotFound is returned when no journaled command or registered player
	// matches a lookup.
	ErrNotFound = errors.New("no such command or player")

	// ErrDB is returned when the command journal could not be read or
	// written.
	ErrDB = errors.New("command journal failure")

	// ErrBadArgument is returned for a username, command or ID that cannot
	// be used as given.
	ErrBadArgument = errors.New("invalid argument")

	// ErrBodyUnmarshal is returned when a request body is not the JSON the
	// endpoint expects.
	ErrBodyUnmarshal = errors.New("malformed request body")
)

// Error is an error with a message and any number of causes. errors.Is
// reports true for an Error and any of its causes, so a single Error can be
// both ErrDB and the driver error behind it.
//
// Create one with New or WrapDB.
type Error struct {
	msg   string
	cause []error
}

// Error returns the message followed by the first cause. If there is no
// message only the first cause is given.
func (e Error) Error() string {
	if len(e.cause) < 1 {
		return e.msg
	}
	if e.msg == "" {
		return e.cause[0].Error()
	}
	return e.msg + ": " + e.cause[0].Error()
}

// Unwrap returns the causes of e, or nil if it has none.
func (e Error) Unwrap() []error {
	if len(e.cause) < 1 {
		return nil
	}
	return e.cause
}

// Is reports whether target is an Error with the same message and causes as
// e. Causes themselves are matched through Unwrap.
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	if !ok {
		return false
	}
	if e.msg != other.msg || len(e.cause) != len(other.cause) {
		return false
	}
	for i := range e.cause {
		if !sameError(e.cause[i], other.cause[i]) {
			return false
		}
	}
	return true
}

// sameError compares two causes without using == on an Error, which holds a
// slice and is not comparable.
func sameError(a, b error) bool {
	if errA, ok := a.(Error); ok {
		return errA.Is(b)
	}
	return a == b
}

// WrapDB returns an Error caused by both err and ErrDB. msg may be empty.
func WrapDB(msg string, err error) Error {
	return New(msg, err, ErrDB)
}

// New returns an Error with the given message and causes.
func New(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = slices.Clone(causes)
	}
	return err
}
