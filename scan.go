package parsip

// Primitive scanners. Every scanner takes the whole input buffer and an
// absolute position, and returns the position after the consumed bytes.
// Three outcomes are possible: progress (err == nil), truncated input
// (*NeedMoreError, the rule could still match with more bytes), or a
// grammar violation (*SyntaxError at the offending byte). A scanner never
// consumes past the bytes its rule matched.

// scanDigit consumes exactly one ASCII digit and returns its value.
func scanDigit(buf []byte, pos int, kind ErrorKind) (int, uint8, error) {
	if pos >= len(buf) {
		return pos, 0, errNeedByte //errtrace:skip
	}
	c := buf[pos]
	if c < '0' || c > '9' {
		return pos, 0, &SyntaxError{Kind: kind, Offset: pos} //errtrace:skip
	}
	return pos + 1, c - '0', nil
}

// scanSP consumes exactly one space byte. The grammar is strict here:
// neither tabs nor runs of blanks are accepted between line fields.
func scanSP(buf []byte, pos int) (int, error) {
	if pos >= len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	if buf[pos] != ' ' {
		return pos, &SyntaxError{Kind: KindDelimiter, Offset: pos} //errtrace:skip
	}
	return pos + 1, nil
}

// scanByte consumes exactly one occurrence of want.
func scanByte(buf []byte, pos int, want byte, kind ErrorKind) (int, error) {
	if pos >= len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	if buf[pos] != want {
		return pos, &SyntaxError{Kind: kind, Offset: pos} //errtrace:skip
	}
	return pos + 1, nil
}

// scanCRLF consumes the two-byte sequence \r\n. A bare \n is a line
// ending violation, not an accepted terminator.
func scanCRLF(buf []byte, pos int) (int, error) {
	if pos >= len(buf) {
		return pos, errNeedCRLF //errtrace:skip
	}
	if buf[pos] != '\r' {
		return pos, &SyntaxError{Kind: KindLineEnding, Offset: pos} //errtrace:skip
	}
	if pos+1 >= len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	if buf[pos+1] != '\n' {
		return pos, &SyntaxError{Kind: KindLineEnding, Offset: pos + 1} //errtrace:skip
	}
	return pos + 2, nil
}

// scanTagFold consumes the fixed literal tag ignoring ASCII case.
func scanTagFold(buf []byte, pos int, tag string, kind ErrorKind) (int, error) {
	for i := 0; i < len(tag); i++ {
		if pos+i >= len(buf) {
			return pos, errNeedByte //errtrace:skip
		}
		if lower(buf[pos+i]) != lower(tag[i]) {
			return pos, &SyntaxError{Kind: kind, Offset: pos + i} //errtrace:skip
		}
	}
	return pos + len(tag), nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

// scanWhile1 consumes the maximal non-empty run of bytes in class.
// A run that extends to the end of the buffer is undecidable: the next
// byte could extend it, so the scanner reports need-more instead of
// returning a span that a longer buffer would contradict.
func scanWhile1(buf []byte, pos int, class *[256]bool, kind ErrorKind) (int, error) {
	i := pos
	for i < len(buf) && class[buf[i]] {
		i++
	}
	if i == len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	if i == pos {
		return pos, &SyntaxError{Kind: kind, Offset: pos} //errtrace:skip
	}
	return i, nil
}

// scanWhile is the optional variant of scanWhile1: an empty run succeeds.
func scanWhile(buf []byte, pos int, class *[256]bool) (int, error) {
	i := pos
	for i < len(buf) && class[buf[i]] {
		i++
	}
	if i == len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	return i, nil
}

// scanHColon consumes HCOLON: *( SP / HTAB ) ":" *( SP / HTAB ).
func scanHColon(buf []byte, pos int) (int, error) {
	i := pos
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		i++
	}
	if i >= len(buf) {
		return pos, errNeedByte //errtrace:skip
	}
	if buf[i] != ':' {
		return pos, &SyntaxError{Kind: KindDelimiter, Offset: i} //errtrace:skip
	}
	i++
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		i++
	}
	return i, nil
}

// skipEmptyLines consumes any run of line endings (CRLF or bare LF)
// before the start line. Implementations should be prepared to receive
// such leading blank lines from lenient peers; this is the one place the
// parser accepts a bare LF.
func skipEmptyLines(buf []byte, pos int) (int, error) {
	i := pos
	for i < len(buf) {
		switch buf[i] {
		case '\n':
			i++
		case '\r':
			if i+1 >= len(buf) {
				// Could be the start of CRLF or of a malformed line;
				// undecidable until the next byte arrives.
				return i, errNeedByte //errtrace:skip
			}
			if buf[i+1] != '\n' {
				return i, nil
			}
			i += 2
		default:
			return i, nil
		}
	}
	return i, nil
}
