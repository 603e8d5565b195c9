package parsip

import "strconv"

// SipVersion is a parsed SIP-Version, e.g. `SIP/2.0` -> SipVersion{2, 0}.
// The grammar admits exactly one decimal digit per component; versions
// with multi-digit components are not representable and fail to parse.
type SipVersion struct {
	Major, Minor uint8
}

func (v SipVersion) String() string {
	return "SIP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}

// Equal reports whether v equals val.
func (v SipVersion) Equal(val any) bool {
	switch o := val.(type) {
	case SipVersion:
		return v == o
	case *SipVersion:
		return o != nil && v == *o
	default:
		return false
	}
}
