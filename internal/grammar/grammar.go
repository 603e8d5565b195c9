// Package grammar holds the byte-level lexical classes of RFC 3261 used by
// the message scanners. The tables are the single source of truth for
// character classification; scanners defer to them for every byte.
package grammar

import "github.com/ghettovoice/parsip/internal/constraints"

// IsTokenChar reports whether b belongs to the RFC 3261 token class.
func IsTokenChar(b byte) bool { return TokenMap[b] }

// IsRequestURIChar reports whether b may occur in a Request-URI.
func IsRequestURIChar(b byte) bool { return RequestURIMap[b] }

// IsReasonPhraseChar reports whether b may occur in a Reason-Phrase.
func IsReasonPhraseChar(b byte) bool { return ReasonPhraseMap[b] }

// IsHeaderValueChar reports whether b may occur in a header field value.
func IsHeaderValueChar(b byte) bool { return HeaderValueMap[b] }

// IsToken reports whether s is a non-empty run of token characters.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !TokenMap[s[i]] {
			return false
		}
	}
	return true
}

// IsRequestURI reports whether s is a non-empty run of Request-URI characters.
func IsRequestURI[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !RequestURIMap[s[i]] {
			return false
		}
	}
	return true
}

// IsReasonPhrase reports whether s consists of Reason-Phrase characters.
// An empty s is a valid reason phrase.
func IsReasonPhrase[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !ReasonPhraseMap[s[i]] {
			return false
		}
	}
	return true
}
