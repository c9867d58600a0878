// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"errors"
	"math"
	"strconv"

	"github.com/terranmechworks/zlisp"
)

var errInvalidFloatSyntax = errors.New("invalid float syntax")
var errNonFiniteFloat = errors.New("non-finite float")

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// looksLikeFloatGrammar reports whether s matches the restricted float
// grammar of spec.md §4.6: optional sign, then digits and/or a single `.`,
// nothing else. This exists to reject exponent and inf/nan forms that
// strconv.ParseFloat would otherwise accept.
func looksLikeFloatGrammar(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) {
		return false
	}
	dots := 0
	for ; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
		case s[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// looksLikeIntegerGrammar reports whether s is entirely digits with an
// optional leading sign, the shape "parse as any" requires before even
// attempting an integer parse.
func looksLikeIntegerGrammar(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ParseIntStrict parses text as a signed 32-bit integer, delegating
// directly to the host parser and wrapping any failure (empty, invalid
// digit, overflow) as ParseIntError.
func ParseIntStrict(text string) (int32, *zlisp.Error) {
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, zlisp.NewParseIntError(text, err)
	}
	return int32(v), nil
}

// ParseFloatStrict parses text as a binary32 float under the restricted
// grammar: the character set is validated first (rejecting exponents and
// inf/nan forms the host parser would otherwise accept), then the result
// is required to be finite.
func ParseFloatStrict(text string) (float32, *zlisp.Error) {
	if !looksLikeFloatGrammar(text) {
		return 0, zlisp.NewParseFloatError(text, errInvalidFloatSyntax)
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, zlisp.NewParseFloatError(text, err)
	}
	f := float32(v)
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0, zlisp.NewParseFloatError(text, errNonFiniteFloat)
	}
	return f, nil
}

// ParseAny classifies unquoted text per spec.md §4.6's "parse as any"
// rule: integer, else float, else string. It never fails; any grammar or
// range mismatch simply falls through to the next candidate, ending in
// TokenString.
func ParseAny(text string) (kind zlisp.TokenKind, i int32, f float32) {
	if looksLikeIntegerGrammar(text) {
		if v, err := ParseIntStrict(text); err == nil {
			return zlisp.TokenInt, v, 0
		}
	}
	if looksLikeFloatGrammar(text) {
		if v, err := ParseFloatStrict(text); err == nil {
			return zlisp.TokenFloat, 0, v
		}
	}
	return zlisp.TokenString, 0, 0
}
