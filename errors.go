package matchable

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidPattern matches every *InvalidPatternError with errors.Is.
	ErrInvalidPattern = errors.New("matchable: invalid pattern")

	// ErrUnsupported is returned when a decoded value has neither the bare
	// string nor the tagged shape.
	ErrUnsupported = errors.New("matchable: unsupported representation")
)

// InvalidPatternError reports a regular expression that failed to compile.
// It is the only error a Matchable constructor returns.
type InvalidPatternError struct {
	// Pattern is the offending source text.
	Pattern string
	// Flags are the flags as they were supplied.
	Flags string
	// Err is the compiler's diagnostic, unchanged.
	Err error
}

func (e *InvalidPatternError) Error() string {
	msg := "matchable: invalid pattern " + strconv.Quote(e.Pattern)
	if e.Flags != "" {
		msg += " (flags " + strconv.Quote(e.Flags) + ")"
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the compiler's diagnostic.
func (e *InvalidPatternError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidPattern) hold.
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
