package parsip

// A Header is a single parsed header field.
//
// Both spans point into the buffer passed to Parse and stay valid only as
// long as that buffer does. Name is guaranteed to be a valid token and
// therefore plain ASCII text. Value is an opaque byte span: the grammar
// permits non-ASCII bytes and line folding, so it is not guaranteed to be
// well-formed text.
type Header struct {
	Name  []byte
	Value []byte
}

// EmptyHeader is a sentinel value for initializing header slots.
//
//	slots := make([]parsip.Header, 64)
//	for i := range slots {
//		slots[i] = parsip.EmptyHeader
//	}
//
// The zero value is equivalent; the sentinel exists for explicitness at
// call sites that reuse slot arrays.
var EmptyHeader = Header{}

// Headers is a fixed-capacity header collection backed by caller-allocated
// slots. The parser writes recognized headers into the slots in place and
// never grows the backing storage; its effective length tracks how many
// slots hold meaningful data, as opposed to the allocated capacity.
//
// A collection is reused across parses: each successful header block scan
// overwrites the slots from the start and resets the effective length.
type Headers struct {
	slots []Header
	n     int
}

// NewHeaders returns a collection backed by the given slots. The slot
// slice defines the capacity; it is never reallocated or resized.
func NewHeaders(slots []Header) *Headers {
	return &Headers{slots: slots}
}

// Len returns the effective length: the number of headers recognized by
// the last completed header block scan.
func (hs *Headers) Len() int {
	if hs == nil {
		return 0
	}
	return hs.n
}

// Cap returns the capacity supplied by the caller.
func (hs *Headers) Cap() int {
	if hs == nil {
		return 0
	}
	return len(hs.slots)
}

// All returns a view of the populated prefix of the collection. The view
// aliases the backing slots; it is invalidated by the next parse.
func (hs *Headers) All() []Header {
	if hs == nil {
		return nil
	}
	return hs.slots[:hs.n]
}

// Reset clears the effective length. The backing slots are left as is.
func (hs *Headers) Reset() {
	if hs != nil {
		hs.n = 0
	}
}

func (hs *Headers) put(i int, h Header) {
	hs.slots[i] = h
}

func (hs *Headers) commit(n int) {
	if hs != nil {
		hs.n = n
	}
}
