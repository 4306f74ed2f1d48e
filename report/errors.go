package report

import "fmt"

// EvalErrorKind enumerates the recoverable failure kinds that can occur while
// evaluating an operation at compile-time.  These failures are expected: they
// result from malformed constant expressions in user programs (eg. a constant
// division by zero) and are surfaced to the user as compile errors by the
// caller.  They are entirely distinct from internal compiler errors, which are
// reported via ReportICE and abort evaluation.
type EvalErrorKind int

// Enumeration of evaluation error kinds.
const (
	DivisionByZero = EvalErrorKind(iota)
	RemainderByZero
	Unimplemented
)

// EvalError represents a recoverable compile-time evaluation failure.
type EvalError struct {
	// The kind of evaluation failure.  This must be one of the enumerated
	// evaluation error kinds above.
	Kind EvalErrorKind

	// The error message.
	Message string
}

func (ee *EvalError) Error() string {
	return ee.Message
}

// RaiseDivisionByZero creates a new division-by-zero evaluation error.
func RaiseDivisionByZero() *EvalError {
	return &EvalError{Kind: DivisionByZero, Message: "division by zero"}
}

// RaiseRemainderByZero creates a new remainder-by-zero evaluation error.
func RaiseRemainderByZero() *EvalError {
	return &EvalError{Kind: RemainderByZero, Message: "remainder by zero"}
}

// RaiseUnimplemented creates a new unimplemented-operation evaluation error.
func RaiseUnimplemented(msg string, args ...interface{}) *EvalError {
	return &EvalError{Kind: Unimplemented, Message: fmt.Sprintf(msg, args...)}
}
