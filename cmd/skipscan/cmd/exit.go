package cmd

import (
	"errors"
	"fmt"
)

// exitError carries a grep-style exit status.
// Success is a nil error, so code is 1 (not found) or 2 (error).
type exitError struct{ code int }

func (e exitError) Error() string {
	if e.code == 1 {
		return "no match"
	}
	return fmt.Sprintf("skipscan error (exit %d)", e.code)
}

// ExitCode extracts the exit status from an error returned by Execute.
// Returns -1 if err does not carry one.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}
