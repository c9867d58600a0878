// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

// MaxStringLen is the largest number of bytes a zlisp string may occupy, on
// either wire format.
const MaxStringLen = 255

// MaxListLen is the largest number of elements a zlisp list may hold, on
// either wire format. This is deliberately conservative (spec.md's Open
// Question on the matter notwithstanding): raising it would be a
// wire-compatibility break with the producing ecosystem.
const MaxListLen = 255

// ValidateIn validates a byte range read off the wire (the binary string
// payload, or a text token's raw bytes) against the zlisp string alphabet:
// non-NUL, non-quote, 7-bit ASCII, at most MaxStringLen bytes. baseOffset
// is the absolute offset of b[0] within the original source buffer, used to
// attach a precise [Location] to any error. ValidateIn is idempotent: a
// buffer that validates once will always validate.
func ValidateIn(b []byte, baseOffset int) *Error {
	if len(b) > MaxStringLen {
		return NewStringTooLong().WithLocation(ByteOffset(baseOffset))
	}
	for i, c := range b {
		if err := validateByte(c); err != nil {
			return err.WithLocation(ByteOffset(baseOffset + i))
		}
	}
	return nil
}

// ValidateByte validates a single byte against the zlisp string alphabet,
// with no offset attached. The text tokenizer uses this directly so that it
// can attach its own (line, column) location to any failure.
func ValidateByte(c byte) *Error { return validateByte(c) }

func validateByte(c byte) *Error {
	switch {
	case c == 0:
		return NewStringContainsNull()
	case c == '"':
		return NewStringContainsQuote()
	case c&0x80 != 0:
		return NewStringContainsInvalidByte()
	default:
		return nil
	}
}

// ValidateOut validates a string before it is written to the wire. Unlike
// ValidateIn this never attaches a location (the caller has no offset yet);
// the codec attaches one if it wants to.
func ValidateOut(s string) *Error {
	if len(s) > MaxStringLen {
		return NewStringTooLong()
	}
	for i := 0; i < len(s); i++ {
		if err := validateByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// delimiterBytes are the characters that end an unquoted text token and, by
// the same token, that force a string to be quoted on text output.
const delimiterBytes = " \t\r\n()"

// NeedsQuoting reports whether s must be wrapped in `"` when written by the
// text codec. A string needs quoting iff it is empty, contains a delimiter
// or parenthesis character, or could be misread as a number on the way back
// in. The "possible number" check is deliberately coarse: it quotes some
// non-numeric strings unnecessarily (e.g. "--" or "."), which round-trip
// correctly anyway, in exchange for never failing to quote an actual
// ambiguous case.
func NeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		for j := 0; j < len(delimiterBytes); j++ {
			if c == delimiterBytes[j] {
				return true
			}
		}
	}
	return looksLikeNumber(s)
}

// looksLikeNumber implements the coarse "possible number" predicate: true
// iff every character of s is drawn from [-+.0-9].
func looksLikeNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '-' && c != '+' && c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
