package parsip

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/parsip/internal/grammar"
)

// A Request is a parsed SIP request.
//
// Fields stay nil (or unset) while a parse has not yet recognized them,
// which allows inspecting the parts that could be parsed before reading
// more, in case the caller wishes to exit early:
//
//	buf := []byte("INVITE sip:callee@domain.com SIP/2.0\r\nHost:")
//	req := parsip.NewRequest(parsip.NewHeaders(make([]parsip.Header, 16)))
//	if _, err := req.Parse(buf); parsip.IsNeedMore(err) {
//		if req.URI != nil {
//			// is the target unreachable? we could stop parsing here
//		}
//	}
//
// A field is only ever set to a span fully validated against its grammar
// class; a failed scan surfaces as an error instead.
type Request struct {
	// Method is the request method, such as `INVITE`. Valid token text.
	Method []byte
	// URI is the request target, such as `sip:callee@domain.com`. It is
	// carried as an opaque span; scheme, user and host decomposition is a
	// higher layer's job.
	URI []byte
	// Version is the protocol version; meaningful only if HasVersion.
	Version SipVersion
	// HasVersion reports whether Version was recognized.
	HasVersion bool
	// Headers is the caller-supplied header collection.
	Headers *Headers
}

// NewRequest creates a Request writing headers into hs.
func NewRequest(hs *Headers) *Request {
	return &Request{Headers: hs}
}

// Reset clears all parsed fields, preparing the object for the next
// message. The header collection is retained.
func (r *Request) Reset() {
	r.Method = nil
	r.URI = nil
	r.Version = SipVersion{}
	r.HasVersion = false
	r.Headers.Reset()
}

// Parse parses buf as the prefix of a SIP request received so far.
//
//	Request-Line = Method SP Request-URI SP SIP-Version CRLF
//
// followed by the header block and a terminating blank line. The whole
// buffer is re-evaluated from its start on every call; the caller grows
// the buffer between calls as network data arrives.
//
// On full success Parse returns the number of bytes consumed, which the
// caller uses to drain its accumulation buffer, and commits the header
// collection's effective length. A [*NeedMoreError] means the buffer
// ended before the message did; every field recognized so far is already
// set. A [*SyntaxError] reports the offending byte; fields recognized
// before the violation remain readable for diagnostics.
//
// Parse performs no allocation on the success and need-more paths, and
// every span it produces aliases buf.
func (r *Request) Parse(buf []byte) (int, error) {
	pos, err := skipEmptyLines(buf, 0)
	if err != nil {
		return 0, err //errtrace:skip
	}

	i, err := scanWhile1(buf, pos, &grammar.TokenMap, KindToken)
	if err != nil {
		return 0, r.fail(err)
	}
	r.Method = buf[pos:i]
	if pos, err = scanSP(buf, i); err != nil {
		return 0, r.fail(err)
	}

	if i, err = scanWhile1(buf, pos, &grammar.RequestURIMap, KindRequestURI); err != nil {
		return 0, r.fail(err)
	}
	r.URI = buf[pos:i]
	if pos, err = scanSP(buf, i); err != nil {
		return 0, r.fail(err)
	}

	pos, ver, err := scanVersion(buf, pos)
	if err != nil {
		return 0, r.fail(err)
	}
	r.Version, r.HasVersion = ver, true
	if pos, err = scanCRLF(buf, pos); err != nil {
		return 0, r.fail(err)
	}

	pos, cnt, err := scanHeaders(buf, pos, r.Headers)
	if err != nil {
		return 0, r.fail(err)
	}
	r.Headers.commit(cnt)
	if pos, err = scanCRLF(buf, pos); err != nil {
		return 0, r.fail(err)
	}
	return pos, nil
}

func (r *Request) fail(err error) error {
	if IsNeedMore(err) {
		return err //errtrace:skip
	}
	return errtrace.Wrap(err)
}

// scanVersion consumes `SIP/` (case-insensitive) and a one-digit major
// and minor version.
func scanVersion(buf []byte, pos int) (int, SipVersion, error) {
	pos, err := scanTagFold(buf, pos, "SIP/", KindVersion)
	if err != nil {
		return pos, SipVersion{}, err //errtrace:skip
	}
	pos, major, err := scanDigit(buf, pos, KindVersion)
	if err != nil {
		return pos, SipVersion{}, err //errtrace:skip
	}
	pos, err = scanByte(buf, pos, '.', KindVersion)
	if err != nil {
		return pos, SipVersion{}, err //errtrace:skip
	}
	pos, minor, err := scanDigit(buf, pos, KindVersion)
	if err != nil {
		return pos, SipVersion{}, err //errtrace:skip
	}
	return pos, SipVersion{Major: major, Minor: minor}, nil
}
