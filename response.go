package parsip

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/parsip/internal/grammar"
)

// A Response is a parsed SIP response.
//
// See the [Request] docs for the explanation of unset fields and of the
// parse lifecycle; the two types behave identically.
type Response struct {
	// Version is the protocol version; meaningful only if HasVersion.
	Version SipVersion
	// HasVersion reports whether Version was recognized.
	HasVersion bool
	// Code is the 3-digit status code, such as 200; meaningful only if
	// HasCode.
	Code uint16
	// HasCode reports whether Code was recognized.
	HasCode bool
	// Reason is the reason phrase, such as `OK`. May legitimately be
	// empty, hence the separate HasReason. Valid UTF-8 text.
	Reason []byte
	// HasReason reports whether Reason was recognized.
	HasReason bool
	// Headers is the caller-supplied header collection.
	Headers *Headers
}

// NewResponse creates a Response writing headers into hs.
func NewResponse(hs *Headers) *Response {
	return &Response{Headers: hs}
}

// Reset clears all parsed fields, preparing the object for the next
// message. The header collection is retained.
func (r *Response) Reset() {
	r.Version = SipVersion{}
	r.HasVersion = false
	r.Code = 0
	r.HasCode = false
	r.Reason = nil
	r.HasReason = false
	r.Headers.Reset()
}

// Parse parses buf as the prefix of a SIP response received so far.
//
//	Status-Line = SIP-Version SP Status-Code SP Reason-Phrase CRLF
//
// The contract is the same as for [Request.Parse]: the buffer is
// re-evaluated from its start, fields are populated as soon as each is
// recognized, and the return value distinguishes completion, truncated
// input and grammar violations.
func (r *Response) Parse(buf []byte) (int, error) {
	pos, err := skipEmptyLines(buf, 0)
	if err != nil {
		return 0, err //errtrace:skip
	}

	pos, ver, err := scanVersion(buf, pos)
	if err != nil {
		return 0, r.fail(err)
	}
	r.Version, r.HasVersion = ver, true
	if pos, err = scanSP(buf, pos); err != nil {
		return 0, r.fail(err)
	}

	pos, code, err := scanStatusCode(buf, pos)
	if err != nil {
		return 0, r.fail(err)
	}
	r.Code, r.HasCode = code, true
	if pos, err = scanSP(buf, pos); err != nil {
		return 0, r.fail(err)
	}

	i, err := scanWhile(buf, pos, &grammar.ReasonPhraseMap)
	if err != nil {
		return 0, r.fail(err)
	}
	reason := buf[pos:i]
	// The byte class admits arbitrary UTF8-CONT bytes, so a span can pass
	// the grammar yet not decode as text.
	if !utf8.Valid(reason) {
		return 0, r.fail(&SyntaxError{Kind: KindEncoding, Offset: pos})
	}
	r.Reason, r.HasReason = reason, true
	if pos, err = scanCRLF(buf, i); err != nil {
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

func (r *Response) fail(err error) error {
	if IsNeedMore(err) {
		return err //errtrace:skip
	}
	return errtrace.Wrap(err)
}

// scanStatusCode consumes exactly three digits:
//
//	code = 100*d0 + 10*d1 + d2
//
// Fewer digits fail at the digit scan, a fourth digit fails at the
// following delimiter check.
func scanStatusCode(buf []byte, pos int) (int, uint16, error) {
	pos, d0, err := scanDigit(buf, pos, KindStatus)
	if err != nil {
		return pos, 0, err //errtrace:skip
	}
	pos, d1, err := scanDigit(buf, pos, KindStatus)
	if err != nil {
		return pos, 0, err //errtrace:skip
	}
	pos, d2, err := scanDigit(buf, pos, KindStatus)
	if err != nil {
		return pos, 0, err //errtrace:skip
	}
	return pos, uint16(d0)*100 + uint16(d1)*10 + uint16(d2), nil
}
