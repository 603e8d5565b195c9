// Package parsip provides an incremental, zero-copy parser for SIP requests
// and responses as defined in RFC 3261.
//
// The parser is push-style: the caller accumulates network bytes in a buffer
// and re-parses it as it grows. Each Parse call either completes the message
// and reports the number of bytes consumed, asks for more input, or fails at
// an exact byte offset. Parsed fields are byte spans aliasing the input
// buffer; the parser itself performs no allocation on the success and
// need-more paths and is safe to drive from a per-connection read loop.
//
// Message bodies are out of scope. A completed parse stops right after the
// blank line terminating the header block; framing the body from
// Content-Length is the caller's job.
package parsip
