package cmdline

import "fmt"

// ParserError represents the type of error.
type ParserError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrUnknownOption indicates an option token that matches no
	// registered option.
	ErrUnknownOption

	// ErrMissingOptionName indicates an option token with an assignment
	// but no name before it, such as "-=value".
	ErrMissingOptionName

	// ErrFlagValueMix indicates an inline assignment on a multi-character
	// short token, which can only ever name a flag cluster.
	ErrFlagValueMix

	// ErrValueRequired indicates a value-taking option that reached the
	// end of input, or appeared inside a flag cluster, without a value.
	ErrValueRequired

	// ErrValueUnexpected indicates an inline assignment on a flag, which
	// does not take a value.
	ErrValueUnexpected

	// ErrInvalidValue indicates a value token that failed conversion or
	// validation for its option.
	ErrInvalidValue

	// ErrPositionalNotAllowed indicates a bare argument with no registered
	// positional slot left to bind it.
	ErrPositionalNotAllowed

	// ErrRequiredMissing indicates a required option that no argument
	// bound, reported by CheckRequired.
	ErrRequiredMissing
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",                      // ErrUnknown
		"unknown option",               // ErrUnknownOption
		"missing option name",          // ErrMissingOptionName
		"flag/argument mix disallowed", // ErrFlagValueMix
		"option requires value",        // ErrValueRequired
		"option value unexpected",      // ErrValueUnexpected
		"invalid option value",         // ErrInvalidValue
		"positional arg not allowed",   // ErrPositionalNotAllowed
		"required option missing",      // ErrRequiredMissing
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a parser error. The error returned from Parse and
// CheckRequired is of this type. The error contains both a Type and Message.
type Error struct {
	// The type of error
	Type ParserError

	// The error message
	Message string

	// Cause is the underlying conversion or validation error, if any.
	Cause error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the error's type, so that callers can match
// categories with errors.Is(err, cmdline.ErrUnknownOption).
func (e *Error) Is(target error) bool {
	tp, ok := target.(ParserError)

	return ok && e.Type == tp
}

// newError builds an *Error whose message is the type's literal followed by
// the offending subject, e.g. "unknown option: --color".
func newError(tp ParserError, subject string) *Error {
	return &Error{
		Type:    tp,
		Message: fmt.Sprintf("%s: %s", tp, subject),
	}
}

func wrapError(tp ParserError, subject string, cause error) *Error {
	err := newError(tp, subject)
	err.Cause = cause

	return err
}
