package lisp

import "fmt"

// Condition classifies an interpreter error. A Condition is itself an
// error, so callers can branch on error kind with errors.Is while the
// session loop renders display text.
type Condition string

// Conditions produced by the interpreter and reader.
const (
	LexError           Condition = "lex-error"
	ArityError         Condition = "arity-error"
	TypeError          Condition = "type-error"
	UndefinedProcedure Condition = "undefined-procedure"
	NotCallable        Condition = "not-callable"
	NotImplemented     Condition = "not-implemented"
)

func (c Condition) Error() string {
	return string(c)
}

// ErrorVal is an error carrying its condition and, when one exists, the
// offending expression.
type ErrorVal struct {
	Condition Condition
	Message   string
	Form      *LVal
}

// ErrorConditionf returns an error with the given condition and a formatted
// message.
func ErrorConditionf(condition Condition, format string, v ...interface{}) *ErrorVal {
	return &ErrorVal{Condition: condition, Message: fmt.Sprintf(format, v...)}
}

// WithForm attaches the offending expression to e and returns e.
func (e *ErrorVal) WithForm(v *LVal) *ErrorVal {
	e.Form = v
	return e
}

// Error renders the display text for e.
func (e *ErrorVal) Error() string {
	if e.Message == "" {
		return string(e.Condition)
	}
	return string(e.Condition) + ": " + e.Message
}

// Unwrap exposes the condition so errors.Is(err, ArityError) and friends
// match.
func (e *ErrorVal) Unwrap() error {
	return e.Condition
}
