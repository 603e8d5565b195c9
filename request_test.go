package parsip_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/parsip"
)

const msgInvite = "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
	"Via: SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1\r\n" +
	"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKnashds8;received=192.0.2.1\r\n" +
	"Max-Forwards: 69\r\n" +
	"To: Bob <sip:bob@biloxi.com>\r\n" +
	"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
	"Call-ID: a84b4c76e66710\r\n" +
	"CSeq: 314159 INVITE\r\n" +
	"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
	"Content-Type: application/sdp\r\n" +
	"Content-Length: 0\r\n" +
	"\r\n"

var msgInviteHeaders = [][2]string{
	{"Via", "SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1"},
	{"Via", "SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKnashds8;received=192.0.2.1"},
	{"Max-Forwards", "69"},
	{"To", "Bob <sip:bob@biloxi.com>"},
	{"From", "Alice <sip:alice@atlanta.com>;tag=1928301774"},
	{"Call-ID", "a84b4c76e66710"},
	{"CSeq", "314159 INVITE"},
	{"Contact", "<sip:alice@pc33.atlanta.com>"},
	{"Content-Type", "application/sdp"},
	{"Content-Length", "0"},
}

// requestFields is the observable state of a Request flattened to plain
// strings for comparison. Version is empty when unset.
type requestFields struct {
	Method  string
	URI     string
	Version string
	Headers [][2]string
}

func requestState(req *parsip.Request) requestFields {
	f := requestFields{
		Method: string(req.Method),
		URI:    string(req.URI),
	}
	if req.HasVersion {
		f.Version = req.Version.String()
	}
	for _, h := range req.Headers.All() {
		f.Headers = append(f.Headers, [2]string{string(h.Name), string(h.Value)})
	}
	return f
}

var _ = Describe("Request", Label("request"), func() {
	DescribeTable("parsing", Label("parsing"),
		// region
		// wantN of -1 means the whole input is consumed.
		func(in string, slots int, wantN int, wantErr error, want requestFields) {
			req := parsip.NewRequest(parsip.NewHeaders(make([]parsip.Header, slots)))
			n, err := req.Parse([]byte(in))
			if wantN < 0 {
				wantN = len(in)
			}
			switch werr := wantErr.(type) {
			case nil:
				Expect(err).ToNot(HaveOccurred(), "assert parse succeeded")
				Expect(n).To(Equal(wantN), "assert consumed byte count")
			case *parsip.SyntaxError:
				Expect(n).To(BeZero(), "assert no bytes reported on failure")
				var serr *parsip.SyntaxError
				Expect(errors.As(err, &serr)).To(BeTrue(), "assert error is a syntax error")
				Expect(*serr).To(Equal(*werr), "assert violation kind and offset")
				Expect(parsip.IsSyntaxErr(err)).To(BeTrue())
				Expect(errors.Is(err, parsip.ErrMalformed)).To(BeTrue())
				Expect(parsip.IsNeedMore(err)).To(BeFalse())
			case *parsip.NeedMoreError:
				Expect(n).To(BeZero(), "assert no bytes reported on partial input")
				Expect(parsip.IsNeedMore(err)).To(BeTrue(), "assert error is a need-more indication")
				Expect(errors.Is(err, parsip.ErrNeedMore)).To(BeTrue())
				Expect(parsip.IsSyntaxErr(err)).To(BeFalse())
			}
			Expect(requestState(req)).To(Equal(want), "assert populated fields")
		},
		EntryDescription("%[1]q"),
		Entry(nil, "OPTIONS sip:example.com SIP/2.0\r\n\r\n", 4, -1, nil,
			requestFields{Method: "OPTIONS", URI: "sip:example.com", Version: "SIP/2.0"},
		),
		Entry(nil, "INVITE sip:bob@biloxi.com SIP/2.0\r\nTo: Bob\r\n\r\n", 4, -1, nil,
			requestFields{
				Method: "INVITE", URI: "sip:bob@biloxi.com", Version: "SIP/2.0",
				Headers: [][2]string{{"To", "Bob"}},
			},
		),
		Entry(nil, "INVITE sip:callee@domain.com SIP/2.0\r\n\r", 4, 0, &parsip.NeedMoreError{},
			requestFields{Method: "INVITE", URI: "sip:callee@domain.com", Version: "SIP/2.0"},
		),
		Entry(nil, msgInvite, 16, -1, nil,
			requestFields{
				Method:  "INVITE",
				URI:     "sip:bob@biloxi.com",
				Version: "SIP/2.0",
				Headers: msgInviteHeaders,
			},
		),
		Entry(nil, "\r\n\r\n\nOPTIONS sip:example.com SIP/2.0\r\n\r\n", 4, -1, nil,
			requestFields{Method: "OPTIONS", URI: "sip:example.com", Version: "SIP/2.0"},
		),
		Entry(nil, "ACK sip:bob@biloxi.com sip/2.0\r\n\r\n", 4, -1, nil,
			requestFields{Method: "ACK", URI: "sip:bob@biloxi.com", Version: "SIP/2.0"},
		),
		Entry(nil,
			"!interesting-Method0123456789_*+`.%indeed'~ "+
				"sip:1_unusual.URI~(to-be!sure)&isn't+it$/crazy?,/;;*:&it+has=1,weird!*pas$wo~d_too.(doesn't-it)@example.com "+
				"SIP/2.0\r\n\r\n",
			4, -1, nil,
			requestFields{
				Method:  "!interesting-Method0123456789_*+`.%indeed'~",
				URI:     "sip:1_unusual.URI~(to-be!sure)&isn't+it$/crazy?,/;;*:&it+has=1,weird!*pas$wo~d_too.(doesn't-it)@example.com",
				Version: "SIP/2.0",
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nContent-Length: 5\r\n\r\nhello", 4, 44, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"Content-Length", "5"}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nSubject: first line\r\n second\tline\r\n\r\n", 4, -1, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"Subject", "first line\r\n second\tline"}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nSubject: hello   \r\n\r\n", 4, -1, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"Subject", "hello"}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nSubject:\r\n\r\n", 4, -1, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"Subject", ""}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nSubject \t:  \t hi\r\n\r\n", 4, -1, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"Subject", "hi"}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nA: 1\r\nB: 2\r\n\r\n", 2, -1, nil,
			requestFields{
				Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0",
				Headers: [][2]string{{"A", "1"}, {"B", "2"}},
			},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\n\r\n", 0, -1, nil,
			requestFields{Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0"},
		),
		Entry(nil, "", 4, 0, &parsip.NeedMoreError{}, requestFields{}),
		Entry(nil, "INVI", 4, 0, &parsip.NeedMoreError{}, requestFields{}),
		Entry(nil, "INVITE sip:bob@biloxi.com SIP/2.0\r\nHost:", 4, 0, &parsip.NeedMoreError{},
			requestFields{Method: "INVITE", URI: "sip:bob@biloxi.com", Version: "SIP/2.0"},
		),
		Entry(nil, "INVITE sip:bob@biloxi.com SIP/2.0\r\nHost: a\r\n", 4, 0, &parsip.NeedMoreError{},
			requestFields{Method: "INVITE", URI: "sip:bob@biloxi.com", Version: "SIP/2.0"},
		),
		Entry(nil, "INVITE sip:bob@b.com SIP/2.0\nHost: a\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindLineEnding, Offset: 28},
			requestFields{Method: "INVITE", URI: "sip:bob@b.com", Version: "SIP/2.0"},
		),
		Entry(nil, "INVITE  sip:bob@b.com SIP/2.0\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindRequestURI, Offset: 7},
			requestFields{Method: "INVITE"},
		),
		Entry(nil, "INVITE sip:bob@b.com HTTP/1.1\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindVersion, Offset: 21},
			requestFields{Method: "INVITE", URI: "sip:bob@b.com"},
		),
		Entry(nil, "OPTIONS sip:a SIP/2\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindVersion, Offset: 19},
			requestFields{Method: "OPTIONS", URI: "sip:a"},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nA: 1\r\nB: 2\r\nC: 3\r\n\r\n", 2, 0,
			&parsip.SyntaxError{Kind: parsip.KindTooManyHeaders, Offset: 35},
			requestFields{Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0"},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nSubject: a\x01b\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindHeaderValue, Offset: 33},
			requestFields{Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0"},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\nBad Name: x\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindDelimiter, Offset: 27},
			requestFields{Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0"},
		),
		Entry(nil, "OPTIONS sip:a SIP/2.0\r\n: x\r\n\r\n", 4, 0,
			&parsip.SyntaxError{Kind: parsip.KindHeaderName, Offset: 23},
			requestFields{Method: "OPTIONS", URI: "sip:a", Version: "SIP/2.0"},
		),
		// endregion
	)

	It("converges as the buffer grows", func() {
		req := parsip.NewRequest(parsip.NewHeaders(make([]parsip.Header, 16)))
		buf := []byte(msgInvite)
		for n := 1; n < len(buf); n++ {
			_, err := req.Parse(buf[:n])
			Expect(parsip.IsNeedMore(err)).To(BeTrue(), "assert prefix of %d bytes is undecided", n)
		}
		n, err := req.Parse(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(len(buf)))
		Expect(req.Headers.Len()).To(Equal(len(msgInviteHeaders)))
	})

	It("returns spans aliasing the input buffer", func() {
		buf := []byte("INVITE sip:bob@biloxi.com SIP/2.0\r\nSubject: hi\r\n\r\n")
		req := parsip.NewRequest(parsip.NewHeaders(make([]parsip.Header, 4)))
		n, err := req.Parse(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(len(buf)))

		Expect(&req.Method[0]).To(BeIdenticalTo(&buf[0]))
		Expect(&req.URI[0]).To(BeIdenticalTo(&buf[7]))
		hdr := req.Headers.All()[0]
		Expect(&hdr.Name[0]).To(BeIdenticalTo(&buf[35]))
		Expect(&hdr.Value[0]).To(BeIdenticalTo(&buf[44]))
	})

	It("resets to the zero state between messages", func() {
		req := parsip.NewRequest(parsip.NewHeaders(make([]parsip.Header, 16)))
		_, err := req.Parse([]byte(msgInvite))
		Expect(err).ToNot(HaveOccurred())

		req.Reset()
		Expect(requestState(req)).To(Equal(requestFields{}))
		Expect(req.Headers.Cap()).To(Equal(16))
	})
})
