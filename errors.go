// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=ErrorKind -output=error_kind_string.go

// ErrorKind enumerates the closed set of error kinds either codec can
// produce. The only open extension point is [KindCustom], used by the
// binding layer to surface visitor-originated failures (an unknown enum
// variant name, for instance) without the codec having to know about them.
type ErrorKind uint8

const (
	// Shape/type errors.
	KindUnsupportedType ErrorKind = iota
	KindExpectedToken
	KindExpectedListOfLength
	KindExpectedKeyValuePair
	KindQuotedStringNotConvertible

	// Data errors.
	KindInsufficientData
	KindInvalidTokenType
	KindInvalidListLength
	KindInvalidStringLength
	KindTrailingData
	KindEofInsideQuote

	// String alphabet errors.
	KindStringTooLong
	KindStringContainsNull
	KindStringContainsQuote
	KindStringContainsInvalidByte

	// Writer errors.
	KindSequenceTooLong
	KindSequenceMustHaveKnownLength

	// Parse errors.
	KindParseIntError
	KindParseFloatError

	// Freeform.
	KindCustom
)

// TokenKind names the four scalar/collection shapes a token can take, plus
// Eof for "no token at all". It is used by [KindExpectedToken] to describe
// what was expected and what was actually found.
type TokenKind uint8

const (
	TokenInt TokenKind = iota
	TokenFloat
	TokenString
	TokenList
	TokenEof
)

func (k TokenKind) String() string {
	switch k {
	case TokenInt:
		return "Int"
	case TokenFloat:
		return "Float"
	case TokenString:
		return "Str"
	case TokenList:
		return "List"
	case TokenEof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Location pinpoints where an error occurred. Exactly one of the two
// representations is meaningful, selected by Binary: a byte offset for the
// binary codec, or a (line, column) pair for the text codec. The zero value
// of Location is not itself a valid location; use [Error.HasLocation] to
// check whether one has been attached.
type Location struct {
	Binary bool
	Offset int // meaningful iff Binary
	Line   int // meaningful iff !Binary; 1-based
	Column int // meaningful iff !Binary; 0-based
}

// ByteOffset constructs a binary Location.
func ByteOffset(offset int) Location {
	return Location{Binary: true, Offset: offset}
}

// LineColumn constructs a text Location.
func LineColumn(line, column int) Location {
	return Location{Binary: false, Line: line, Column: column}
}

func (l Location) String() string {
	if l.Binary {
		return "at offset " + strconv.Itoa(l.Offset)
	}
	return "at line " + strconv.Itoa(l.Line) + ", column " + strconv.Itoa(l.Column)
}

// Error is the unified error type produced by either codec and by the
// binding layer. It carries a closed [ErrorKind] plus whatever payload that
// kind requires, and an optional [Location] describing where in the source
// the error was detected.
//
// Errors are frequently constructed without a location (e.g. by the binding
// layer, which has no byte offset or line/column of its own) and have one
// attached by the codec as the error unwinds through it. The first
// successful attach wins: an error that already carries a location is never
// overwritten. See [Error.WithLocation].
type Error struct {
	Kind ErrorKind

	located  bool
	location Location

	// KindExpectedToken
	ExpectedToken TokenKind
	FoundToken    TokenKind

	// KindExpectedListOfLength
	Min, Max, Found int

	// KindInsufficientData
	Expected, Available int

	// KindParseIntError / KindParseFloatError
	Text string
	Err  error

	// KindCustom
	Message string
}

// HasLocation reports whether a location has been attached to e.
func (e *Error) HasLocation() bool { return e.located }

// GetLocation returns the location attached to e, if any.
func (e *Error) GetLocation() (Location, bool) { return e.location, e.located }

// WithLocation attaches loc to e and returns e, unless e already carries a
// location, in which case e is returned unmodified. This makes the
// operation safe to call redundantly as an error unwinds through nested
// calls: the innermost (first) attach wins.
func (e *Error) WithLocation(loc Location) *Error {
	if e == nil || e.located {
		return e
	}
	e.located = true
	e.location = loc
	return e
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.describe())
	if e.located {
		b.WriteString(" (")
		b.WriteString(e.location.String())
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) describe() string {
	switch e.Kind {
	case KindUnsupportedType:
		return "unsupported type"
	case KindExpectedToken:
		return "expected token " + e.ExpectedToken.String() + ", found " + e.FoundToken.String()
	case KindExpectedListOfLength:
		if e.Min == e.Max {
			return "expected list of length " + strconv.Itoa(e.Min) + ", found " + strconv.Itoa(e.Found)
		}
		return "expected list of length " + strconv.Itoa(e.Min) + ".." + strconv.Itoa(e.Max) + ", found " + strconv.Itoa(e.Found)
	case KindExpectedKeyValuePair:
		return "expected key-value pair"
	case KindQuotedStringNotConvertible:
		return "quoted string is not convertible to a number"
	case KindInsufficientData:
		return "insufficient data: expected " + strconv.Itoa(e.Expected) + " bytes, " + strconv.Itoa(e.Available) + " available"
	case KindInvalidTokenType:
		return "invalid token type"
	case KindInvalidListLength:
		return "invalid list length"
	case KindInvalidStringLength:
		return "invalid string length"
	case KindTrailingData:
		return "trailing data"
	case KindEofInsideQuote:
		return "end of input inside quoted string"
	case KindStringTooLong:
		return "string too long"
	case KindStringContainsNull:
		return "string contains a null byte"
	case KindStringContainsQuote:
		return "string contains a quote character"
	case KindStringContainsInvalidByte:
		return "string contains an invalid byte"
	case KindSequenceTooLong:
		return "sequence too long"
	case KindSequenceMustHaveKnownLength:
		return "sequence must have a known length"
	case KindParseIntError:
		return "invalid integer " + strconv.Quote(e.Text) + ": " + e.Err.Error()
	case KindParseFloatError:
		return "invalid float " + strconv.Quote(e.Text) + ": " + e.Err.Error()
	case KindCustom:
		return e.Message
	default:
		return "unknown error"
	}
}

// NewUnsupportedType reports that a Go value has no zlisp representation.
func NewUnsupportedType() *Error { return &Error{Kind: KindUnsupportedType} }

// NewExpectedToken reports a tag mismatch: expected was required but found
// was actually present (or TokenEof if the input was exhausted).
func NewExpectedToken(expected, found TokenKind) *Error {
	return &Error{Kind: KindExpectedToken, ExpectedToken: expected, FoundToken: found}
}

// NewExpectedListOfLength reports that a fixed-shape decode (an Option,
// Unit, or tuple) read a list whose length fell outside [min, max].
func NewExpectedListOfLength(min, max, found int) *Error {
	return &Error{Kind: KindExpectedListOfLength, Min: min, Max: max, Found: found}
}

// NewExpectedKeyValuePair reports an odd-length map/struct body.
func NewExpectedKeyValuePair() *Error { return &Error{Kind: KindExpectedKeyValuePair} }

// NewQuotedStringNotConvertible reports an attempt to parse a quoted text
// token as a number.
func NewQuotedStringNotConvertible() *Error { return &Error{Kind: KindQuotedStringNotConvertible} }

// NewInsufficientData reports a short read.
func NewInsufficientData(expected, available int) *Error {
	return &Error{Kind: KindInsufficientData, Expected: expected, Available: available}
}

// NewInvalidTokenType reports a binary tag value outside {1,2,3,4}.
func NewInvalidTokenType() *Error { return &Error{Kind: KindInvalidTokenType} }

// NewInvalidListLength reports a stored list-length field that is zero or
// negative (a negative element count), or a binary outer wrapper whose
// element count is not exactly 1.
func NewInvalidListLength() *Error { return &Error{Kind: KindInvalidListLength} }

// NewInvalidStringLength reports a negative string-length field.
func NewInvalidStringLength() *Error { return &Error{Kind: KindInvalidStringLength} }

// NewTrailingData reports unconsumed input after a complete top-level value.
func NewTrailingData() *Error { return &Error{Kind: KindTrailingData} }

// NewEofInsideQuote reports an unterminated quoted text token.
func NewEofInsideQuote() *Error { return &Error{Kind: KindEofInsideQuote} }

// NewStringTooLong reports a string exceeding 255 bytes.
func NewStringTooLong() *Error { return &Error{Kind: KindStringTooLong} }

// NewStringContainsNull reports an embedded NUL byte.
func NewStringContainsNull() *Error { return &Error{Kind: KindStringContainsNull} }

// NewStringContainsQuote reports an embedded `"` byte.
func NewStringContainsQuote() *Error { return &Error{Kind: KindStringContainsQuote} }

// NewStringContainsInvalidByte reports a byte with the high bit set (above
// 127); a NUL byte is reported by [NewStringContainsNull] instead.
func NewStringContainsInvalidByte() *Error { return &Error{Kind: KindStringContainsInvalidByte} }

// NewSequenceTooLong reports a list/map/struct encoding exceeding 255
// elements.
func NewSequenceTooLong() *Error { return &Error{Kind: KindSequenceTooLong} }

// NewSequenceMustHaveKnownLength reports an attempt to begin a sequence
// without a known length; zlisp's binary and text writers both require the
// length up front.
func NewSequenceMustHaveKnownLength() *Error { return &Error{Kind: KindSequenceMustHaveKnownLength} }

// NewParseIntError wraps a failure from the host integer parser.
func NewParseIntError(text string, err error) *Error {
	return &Error{Kind: KindParseIntError, Text: text, Err: err}
}

// NewParseFloatError wraps a failure from the host float parser.
func NewParseFloatError(text string, err error) *Error {
	return &Error{Kind: KindParseFloatError, Text: text, Err: err}
}

// NewCustom constructs a freeform error. This is the single extension point
// visitor code (struct/enum decode hooks) uses to report failures the codec
// itself cannot enumerate, such as an unknown enum variant name. Callers
// that need to recognize specific Custom errors should match on the message
// text, e.g. strings.Contains(err.Error(), "unknown variant").
func NewCustom(message string) *Error { return &Error{Kind: KindCustom, Message: message} }
