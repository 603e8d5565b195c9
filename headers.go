package parsip

import "github.com/ghettovoice/parsip/internal/grammar"

// scanHeaderValue consumes one header field value including RFC 3261
// line folding and returns the value span.
//
// The scan walks byte by byte tracking the end of the last content byte;
// blanks and CR are skipped without advancing that marker. A line break
// followed by a blank is a fold and stays inside the value verbatim. A
// line break followed by anything else terminates the value: the scan
// resumes at the start of the terminating break (so the caller's
// mandatory CRLF check sees it) and the returned span has trailing
// whitespace trimmed. A value may be empty.
func scanHeaderValue(buf []byte, pos int) (int, []byte, error) {
	end := pos // one past the last content byte
	i := pos
	for i < len(buf) {
		switch c := buf[i]; c {
		case '\n':
			if i+1 >= len(buf) {
				// Cannot yet decide between end-of-value and a
				// continuation line.
				return pos, nil, errNeedByte //errtrace:skip
			}
			if next := buf[i+1]; next == ' ' || next == '\t' {
				i += 2
				continue
			}
			term := i
			if i > pos && buf[i-1] == '\r' {
				term = i - 1
			}
			return term, buf[pos:end], nil
		case ' ', '\t', '\r':
			i++
		default:
			if !grammar.HeaderValueMap[c] {
				return pos, nil, &SyntaxError{Kind: KindHeaderValue, Offset: i} //errtrace:skip
			}
			end = i + 1
			i++
		}
	}
	return pos, nil, errNeedByte //errtrace:skip
}

// scanHeaders recognizes `name: value` pairs until a blank line or until
// the collection capacity is reached, writing each header into the next
// free slot in place. It returns the position of the blank terminator
// line (not consumed here) and the count of headers written.
//
// The effective length of hs is not touched; committing the count is the
// caller's step once the whole header block is known good.
func scanHeaders(buf []byte, pos int, hs *Headers) (int, int, error) {
	n := 0
	for {
		if pos >= len(buf) {
			return pos, n, errNeedCRLF //errtrace:skip
		}
		if buf[pos] == '\r' {
			if pos+1 >= len(buf) {
				return pos, n, errNeedByte //errtrace:skip
			}
			if buf[pos+1] == '\n' {
				return pos, n, nil
			}
		}
		if n >= hs.Cap() {
			return pos, n, &SyntaxError{Kind: KindTooManyHeaders, Offset: pos} //errtrace:skip
		}

		i, err := scanWhile1(buf, pos, &grammar.TokenMap, KindHeaderName)
		if err != nil {
			return pos, n, err //errtrace:skip
		}
		name := buf[pos:i]
		i, err = scanHColon(buf, i)
		if err != nil {
			return pos, n, err //errtrace:skip
		}
		i, val, err := scanHeaderValue(buf, i)
		if err != nil {
			return pos, n, err //errtrace:skip
		}
		i, err = scanCRLF(buf, i)
		if err != nil {
			return pos, n, err //errtrace:skip
		}

		hs.put(n, Header{Name: name, Value: val})
		n++
		pos = i
	}
}
