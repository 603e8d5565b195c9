package parsip

//go:generate go tool errtrace -w .

import (
	"strconv"

	"github.com/ghettovoice/parsip/internal/errorutil"
)

// Sentinel errors. Both kinds of parse failure unwrap to one of these,
// so callers can branch with [errors.Is] without inspecting the concrete type.
const (
	// ErrNeedMore reports that the buffer ended before the grammar rule
	// under evaluation could be decided. It is not a malformed-input state.
	ErrNeedMore errorutil.Error = "need more data"
	// ErrMalformed reports a grammar violation in the input.
	ErrMalformed errorutil.Error = "malformed input"
)

// ErrorKind classifies a grammar violation.
type ErrorKind uint8

const (
	// KindLineEnding - expected CRLF, found something else.
	KindLineEnding ErrorKind = iota + 1
	// KindToken - invalid byte where a token was required.
	KindToken
	// KindHeaderName - invalid byte in a header field name.
	KindHeaderName
	// KindHeaderValue - invalid byte in a header field value.
	KindHeaderValue
	// KindDelimiter - missing required space or header colon.
	KindDelimiter
	// KindRequestURI - invalid byte in the request target.
	KindRequestURI
	// KindVersion - invalid byte in the SIP version.
	KindVersion
	// KindStatus - invalid byte in the response status code.
	KindStatus
	// KindEncoding - a recognized span is not well-formed UTF-8 text.
	KindEncoding
	// KindTooManyHeaders - header lines remain after the header collection
	// capacity was reached.
	KindTooManyHeaders
)

func (k ErrorKind) String() string {
	switch k {
	case KindLineEnding:
		return "invalid line ending"
	case KindToken:
		return "invalid token character"
	case KindHeaderName:
		return "invalid header name"
	case KindHeaderValue:
		return "invalid header value byte"
	case KindDelimiter:
		return "missing delimiter"
	case KindRequestURI:
		return "invalid request target"
	case KindVersion:
		return "invalid SIP version"
	case KindStatus:
		return "invalid status code"
	case KindEncoding:
		return "malformed text encoding"
	case KindTooManyHeaders:
		return "too many headers"
	default:
		return "unknown"
	}
}

// A SyntaxError reports a grammar violation at a byte position of the
// input buffer. The violation is terminal for the current parse call:
// the caller must discard the message, there is no skip-and-continue.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int // position of the offending byte
}

func (e *SyntaxError) Error() string {
	return e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Grammar marks the error for [errorutil.IsGrammarErr].
func (e *SyntaxError) Grammar() bool { return true }

// Is reports ErrMalformed as the sentinel of every syntax error.
func (e *SyntaxError) Is(target error) bool { return target == ErrMalformed }

// A NeedMoreError reports that the buffer ended before the message could
// be fully evaluated. The caller should retry with a larger buffer once
// more bytes have arrived.
type NeedMoreError struct {
	// Hint is the minimal number of additional bytes that would allow the
	// scan to progress, or 0 when unknown. Reaching the hint does not
	// guarantee completion.
	Hint int
}

func (e *NeedMoreError) Error() string {
	if e.Hint > 0 {
		return "need " + strconv.Itoa(e.Hint) + " more bytes"
	}
	return "need more bytes"
}

// Incomplete marks the error for [errorutil.IsIncompleteErr].
func (e *NeedMoreError) Incomplete() bool { return true }

// Is reports ErrNeedMore as the sentinel of every need-more error.
func (e *NeedMoreError) Is(target error) bool { return target == ErrNeedMore }

// Shared values returned by the scanners, so the retry-heavy incomplete
// path stays allocation-free. Callers must not mutate them.
var (
	errNeedByte = &NeedMoreError{Hint: 1}
	errNeedCRLF = &NeedMoreError{Hint: 2}
)

// IsNeedMore reports whether err is an incomplete-input indication.
func IsNeedMore(err error) bool { return errorutil.IsIncompleteErr(err) }

// IsSyntaxErr reports whether err is a grammar violation.
func IsSyntaxErr(err error) bool { return errorutil.IsGrammarErr(err) }
