package bigint

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies the failure modes a BigInt operation can report.
type Kind int

const (
	// KindOutOfMemory reports that a digit buffer could not be grown.
	// Go's allocator panics rather than returning a recoverable error for
	// all but the most pathological requests, so this kind exists for API
	// parity but is not raised by any operation in this package; see
	// DESIGN.md.
	KindOutOfMemory Kind = iota
	// KindDomain reports an input outside an operation's mathematical
	// domain: division or modulo by zero, a negative shift or exponent
	// count, or a log base smaller than 2.
	KindDomain
	// KindRange reports a value outside the range representable by the
	// destination: a conversion that overflows a machine integer, a shift
	// count too large to materialize, or a fixed buffer too small.
	KindRange
	// KindInvalid reports malformed input: an unparsable string or a radix
	// other than 2, 8, 10 or 16. No operation checks the digit-width
	// configuration, so it is never reported for that.
	KindInvalid
	// KindOverflow reports a Float64 conversion whose magnitude exceeds
	// the dynamic range of float64; the result is a correctly-signed
	// infinity.
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindOutOfMemory:
		return "out of memory"
	case KindDomain:
		return "domain error"
	case KindRange:
		return "range error"
	case KindInvalid:
		return "invalid argument"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package. Use errors.Is against the Err* sentinels, or Kind() to
// switch on the failure class directly.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind reports the failure class of e.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

// Sentinel values usable with errors.Is; every *Error produced by this
// package Is() exactly one of these.
var (
	ErrOutOfMemory = &Error{KindOutOfMemory, "bigint: out of memory"}
	ErrDomain      = &Error{KindDomain, "bigint: argument out of domain"}
	ErrRange       = &Error{KindRange, "bigint: value out of range"}
	ErrInvalid     = &Error{KindInvalid, "bigint: invalid argument"}
	ErrOverflow    = &Error{KindOverflow, "bigint: overflow"}
)

// wrap attaches context to one of the package sentinels while preserving
// errors.Is(err, sentinel).
func wrap(sentinel *Error, context string) error {
	return pkgerrors.Wrap(sentinel, context)
}

func wrapf(sentinel *Error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(sentinel, format, args...)
}

// As reports whether err (or any error it wraps) is a *Error, returning it.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
