package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors up through every clip and search step would add a lot of
// noise to the numeric code. Instead, deep failures panic with a DivideError,
// and the public API recovers to convert to an error.

type DivideError error

// Panic with a DivideError wrapping one of the sentinel errors, so that callers
// can still match it with errors.Is.
func fatalf(cause error, format string, args ...interface{}) {
	panic(DivideError(errors.Wrapf(cause, format, args...)))
}

// Convert a recovered DivideError back into an error. Anything else, including
// runtime errors such as index out of range, is a real bug and keeps panicking.
func HandleDividePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if divideError, ok := r.(DivideError); ok {
			return divideError
		}
		panic(r)
	}
	return nil
}
