// Package errors defines the finance calculation error taxonomy.
//
// Every calculation failure is one of four kinds. Callers branch on the
// kind via errors.Is against the exported sentinels; the struct carries
// the offending field and value so the CLI can build a user message.
package errors

import "fmt"

// Kind classifies a finance calculation error.
type Kind int

const (
	// KindInvalidInput indicates a precondition on one or more arguments
	// was violated (non-finite, wrong sign, empty series, out-of-domain rate).
	KindInvalidInput Kind = iota
	// KindDivisionByZero indicates a denominator evaluated to exactly zero
	// at calculation time.
	KindDivisionByZero
	// KindOverflow indicates a computed result was non-finite despite
	// finite inputs.
	KindOverflow
	// KindConvergenceFailed indicates an iterative solver did not reach its
	// precision target within the iteration budget.
	KindConvergenceFailed
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindOverflow:
		return "overflow"
	case KindConvergenceFailed:
		return "convergence_failed"
	default:
		return "unknown"
	}
}

// FinanceError is the structured error returned by every calculation.
type FinanceError struct {
	Kind    Kind
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Message
}

// Is reports whether target matches this error's kind, enabling
// errors.Is(err, ErrInvalidInput) style checks against the sentinels.
func (e *FinanceError) Is(target error) bool {
	t, ok := target.(*FinanceError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Field == "" || t.Field == e.Field)
}

// Sentinel errors, one per kind. These carry no context and exist only
// as errors.Is targets.
var (
	ErrInvalidInput      = &FinanceError{Kind: KindInvalidInput, Message: "invalid input"}
	ErrDivisionByZero    = &FinanceError{Kind: KindDivisionByZero, Message: "division by zero"}
	ErrOverflow          = &FinanceError{Kind: KindOverflow, Message: "calculation overflow"}
	ErrConvergenceFailed = &FinanceError{Kind: KindConvergenceFailed, Message: "convergence failed"}
)

// InvalidInput creates an invalid-input error naming the field and the
// offending value.
func InvalidInput(field string, value interface{}, message string) *FinanceError {
	return &FinanceError{
		Kind:    KindInvalidInput,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// InvalidInputf creates an invalid-input error with a formatted message.
func InvalidInputf(field string, value interface{}, format string, args ...interface{}) *FinanceError {
	return InvalidInput(field, value, fmt.Sprintf(format, args...))
}

// DivisionByZero creates a division-by-zero error for the named divisor.
func DivisionByZero(field string) *FinanceError {
	return &FinanceError{
		Kind:    KindDivisionByZero,
		Field:   field,
		Message: fmt.Sprintf("%s evaluated to zero", field),
	}
}

// Overflow creates an overflow error for the named operation.
func Overflow(operation string, value interface{}) *FinanceError {
	return &FinanceError{
		Kind:    KindOverflow,
		Field:   operation,
		Value:   value,
		Message: fmt.Sprintf("%s produced a non-finite result", operation),
	}
}

// ConvergenceFailed creates a convergence error after the given number
// of iterations.
func ConvergenceFailed(solver string, iterations int) *FinanceError {
	return &FinanceError{
		Kind:    KindConvergenceFailed,
		Field:   solver,
		Value:   iterations,
		Message: fmt.Sprintf("%s did not converge after %d iterations", solver, iterations),
	}
}
