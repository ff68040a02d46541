package main

import (
	"errors"
	"fmt"
)

// ErrNotConverged is returned by Driver.Run when the cycle cap runs
// out before both convergence criteria hold. The best geometry found
// so far is still returned alongside it.
var ErrNotConverged = errors.New("relaxation did not converge")

// ProcessError reports a nonzero exit from one of the external
// solvers. It is fatal to the whole run; the driver never retries.
type ProcessError struct {
	Cmd    string
	Exit   int
	Output []byte
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%q exited with status %d", e.Cmd, e.Exit)
}

// ParseError reports a missing or malformed field in a solver output
// document. Continuing with a partial document risks reporting wrong
// physics, so it is never defaulted away.
type ParseError struct {
	File  string
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: missing or malformed %s", e.File, e.Field)
}
