package hafas

import "fmt"

// TransportError is returned by a Transport implementation. Exactly one of
// the two shapes below applies: either the network call itself failed, or
// it completed with a non-2xx status.
type TransportError struct {
	// Err is set for network/IO failures; nil for a non-success status.
	Err error

	// Code, Reason and Body are set when the transport got a response but
	// the status was not 2xx.
	Code   int
	Reason string
	Body   []byte
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %s", e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("transport: status %d: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("transport: status %d", e.Code)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is a non-OK `err` field at either envelope level of a HAFAS response.
type ProtocolError struct {
	Code string
	Text string
}

func (e *ProtocolError) Error() string { return e.Text }

// ParseErrorKind distinguishes the leaf shape of a ParseError, matching the
// original's Chrono/Int/generic split.
type ParseErrorKind int

const (
	ParseErrorGeneric ParseErrorKind = iota
	ParseErrorTime
	ParseErrorInt
)

// ParseError covers schema mismatches, bad dates, dangling common-table
// indices, and missing mandatory fields.
type ParseError struct {
	Info string
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Info
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Info: fmt.Sprintf(format, args...)}
}

func wrapTimeError(err error) *ParseError {
	return &ParseError{Kind: ParseErrorTime, Err: err}
}

func wrapIntError(err error) *ParseError {
	return &ParseError{Kind: ParseErrorInt, Err: err}
}

// InvalidInputError is returned when a caller's request violates a
// precondition the envelope builder cannot reconcile, e.g. supplying both a
// departure and an arrival time for one journey query.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }
