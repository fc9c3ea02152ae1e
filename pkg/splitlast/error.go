package splitlast

import (
	"fmt"
	"runtime"
)

// SplitError is the only error produced by this package.
// It carries a message and the source location where it was raised:
// %v and Error() render the message alone for user-facing output,
// %+v adds file and line for diagnostics.
type SplitError struct {
	msg  string
	file string
	line int
}

func newSplitError(msg string) *SplitError {
	e := &SplitError{msg: msg}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.file = file
		e.line = line
	}
	return e
}

func (e *SplitError) Error() string {
	return e.msg
}

// File and Line report where the error was raised.
func (e *SplitError) File() string { return e.file }
func (e *SplitError) Line() int    { return e.line }

func (e *SplitError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "{ file: %s, line: %d, error: %s }", e.file, e.line, e.msg)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.msg)
	default:
		fmt.Fprint(s, e.msg)
	}
}
