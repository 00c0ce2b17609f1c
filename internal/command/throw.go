package command

import "github.com/pkg/errors"

// Threading errors back out of every argument parser would bury the command
// table in boilerplate. Instead, parsers panic with a commandError, and Exec
// recovers it into an ordinary error.

type commandError struct {
	error
}

// Panic with a commandError.
func fatalf(format string, args ...interface{}) {
	panic(commandError{errors.Errorf(format, args...)})
}

// Panic with a commandError if err is non-nil.
func check(err error) {
	if err != nil {
		panic(commandError{err})
	}
}

// Convert a recovered commandError to an error. Anything else is a real bug and
// keeps panicking.
func handleCommandPanicRecover(r interface{}) error {
	if r != nil {
		if cmdErr, ok := r.(commandError); ok {
			return cmdErr.error
		}
		panic(r)
	}
	return nil
}
