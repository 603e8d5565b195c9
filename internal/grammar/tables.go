package grammar

// The four lexical classes used by the message grammar, each materialized
// as a 256-entry table so the scanners classify a byte with one index.
//
// RFC 3261 25.1:
//
//	token          =  1*(alphanum / "-" / "." / "!" / "%" / "*"
//	                  / "_" / "+" / "`" / "'" / "~" )
//	Request-URI    =  SIP-URI / SIPS-URI / absoluteURI
//	Reason-Phrase  =  *(reserved / unreserved / escaped
//	                  / UTF8-NONASCII / UTF8-CONT / SP / HTAB)
//	header-value   =  *(TEXT-UTF8char / UTF8-CONT / LWS)
//
// The Request-URI class is the union of bytes that may occur anywhere in a
// SIP-URI, SIPS-URI or absoluteURI; the URI is carried as an opaque span
// and decomposed by a higher layer.
var (
	TokenMap        [256]bool
	RequestURIMap   [256]bool
	ReasonPhraseMap [256]bool
	HeaderValueMap  [256]bool
)

const (
	uriMarks = "!$%&'()*+,-./:;=?@_~"
	tokMarks = "!%'*+-._`~"
)

func init() {
	for c := 0; c < 256; c++ {
		b := byte(c)

		alnum := b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
		utf8NonASCII := b >= 0xC0 && b <= 0xFD
		utf8Cont := b >= 0x80 && b <= 0xBF

		TokenMap[c] = alnum || indexByte(tokMarks, b)
		RequestURIMap[c] = alnum || indexByte(uriMarks, b)
		ReasonPhraseMap[c] = alnum || indexByte(uriMarks, b) ||
			b == ' ' || b == '\t' || utf8NonASCII || utf8Cont

		// TEXT-UTF8char is %x21-7E / UTF8-NONASCII; LWS adds SP, HTAB, CR
		// and LF. NUL, BEL and DEL are admitted as well: they occur in the
		// wild inside opaque binary header values and are harmless to a
		// scanner that never interprets the value.
		HeaderValueMap[c] = b >= 0x21 && b <= 0x7E || utf8NonASCII || utf8Cont ||
			b == ' ' || b == '\t' || b == '\r' || b == '\n' ||
			b == 0x00 || b == 0x07 || b == 0x7F
	}
}

func indexByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
