// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text implements the parenthesized text wire format: a
// whitespace-delimited, quote-toggling rendering of the same shape-directed
// binding protocol the binary package serves.
package text

import (
	"strings"
	"unsafe"

	"github.com/terranmechworks/zlisp"
)

// StructuralKind distinguishes the two bracket tokens from a scalar text
// token.
type StructuralKind uint8

const (
	TokText StructuralKind = iota
	TokListStart
	TokListEnd
	TokEof
)

// Token is one lexical unit of the text format: either a `(`/`)` structural
// token, or a scalar text span with its source location and whether any part
// of it was quoted.
type Token struct {
	Kind StructuralKind
	Text string
	// Quoted is true if any part of Text came from inside a `"..."` span.
	// Quoted text is never subject to numeric interpretation, even if every
	// character happens to look like a number.
	Quoted bool
	Line   int // 1-based
	Col    int // 0-based
}

// Tokenizer scans a text-format buffer into a flat stream of tokens,
// tracking line and column for error reporting.
type Tokenizer struct {
	buf  []byte
	pos  int
	line int
	col  int
}

// NewTokenizer returns a Tokenizer over buf. buf is not copied; the
// Tokenizer borrows slices of it for unquoted token text.
func NewTokenizer(buf []byte) *Tokenizer {
	return &Tokenizer{buf: buf, line: 1, col: 0}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isStructural(c byte) bool {
	return c == '(' || c == ')'
}

// advance consumes and returns the next byte, updating line/col.
func (t *Tokenizer) advance() byte {
	c := t.buf[t.pos]
	t.pos++
	if c == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	return c
}

func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.buf) && isSpace(t.buf[t.pos]) {
		t.advance()
	}
}

// Next returns the next token, or a TokEof token once the input is
// exhausted.
func (t *Tokenizer) Next() (Token, *zlisp.Error) {
	t.skipSpace()
	line, col := t.line, t.col
	if t.pos >= len(t.buf) {
		return Token{Kind: TokEof, Line: line, Col: col}, nil
	}
	switch c := t.buf[t.pos]; c {
	case '(':
		t.advance()
		return Token{Kind: TokListStart, Line: line, Col: col}, nil
	case ')':
		t.advance()
		return Token{Kind: TokListEnd, Line: line, Col: col}, nil
	default:
		return t.scanText(line, col)
	}
}

// scanText scans a scalar token starting at the tokenizer's current
// position. It takes a fast path that borrows a slice of buf directly when
// no quote appears, falling back to a builder only once quote-toggling
// requires splicing separate spans together (spec.md §4.5's `a"b c"d` ->
// `ab cd`).
func (t *Tokenizer) scanText(line, col int) (Token, *zlisp.Error) {
	start := t.pos
	for t.pos < len(t.buf) {
		c := t.buf[t.pos]
		if c == '"' {
			return t.scanQuotedText(start, line, col)
		}
		if isSpace(c) || isStructural(c) {
			break
		}
		if verr := zlisp.ValidateByte(c); verr != nil {
			return Token{}, verr.WithLocation(zlisp.LineColumn(t.line, t.col))
		}
		t.advance()
	}
	b := t.buf[start:t.pos]
	if len(b) > zlisp.MaxStringLen {
		return Token{}, zlisp.NewStringTooLong().WithLocation(zlisp.LineColumn(line, col))
	}
	if len(b) == 0 {
		// Next only calls scanText once it has skipped whitespace and
		// ruled out eof and parens, so an empty unquoted span cannot occur.
		return Token{}, zlisp.NewCustom("empty unquoted token").WithLocation(zlisp.LineColumn(line, col))
	}
	return Token{Kind: TokText, Text: unsafeString(b), Line: line, Col: col}, nil
}

// scanQuotedText continues a scalar token from start once a `"` has been
// seen, toggling in and out of quoted spans until a delimiter or `)` is hit
// outside any quote. Inside a quote, whitespace and parentheses are
// ordinary data bytes.
func (t *Tokenizer) scanQuotedText(start, line, col int) (Token, *zlisp.Error) {
	if t.pos-start > zlisp.MaxStringLen {
		return Token{}, zlisp.NewStringTooLong().WithLocation(zlisp.LineColumn(line, col))
	}
	var sb strings.Builder
	sb.Write(t.buf[start:t.pos])
	insideQuote := false
	for {
		if t.pos >= len(t.buf) {
			if insideQuote {
				return Token{}, zlisp.NewEofInsideQuote().WithLocation(zlisp.LineColumn(t.line, t.col))
			}
			break
		}
		c := t.buf[t.pos]
		if !insideQuote && (isSpace(c) || isStructural(c)) {
			break
		}
		if c == '"' {
			insideQuote = !insideQuote
			t.advance()
			continue
		}
		if verr := zlisp.ValidateByte(c); verr != nil {
			return Token{}, verr.WithLocation(zlisp.LineColumn(t.line, t.col))
		}
		sb.WriteByte(c)
		t.advance()
		if sb.Len() > zlisp.MaxStringLen {
			return Token{}, zlisp.NewStringTooLong().WithLocation(zlisp.LineColumn(line, col))
		}
	}
	return Token{Kind: TokText, Text: sb.String(), Quoted: true, Line: line, Col: col}, nil
}

// unsafeString borrows b as a string without copying. b must not be
// mutated for the lifetime of the returned string; the Tokenizer never
// writes back into buf, so this holds for every token it produces.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
