// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "github.com/terranmechworks/zlisp"

// AnyToken is the result of a "decode as any" read: a classification of the
// next token into one of zlisp's four shapes, without committing to a
// specific Go type on the caller's behalf.
type AnyToken struct {
	Kind zlisp.TokenKind
	Int  int32
	Flt  float32
	Str  string
	// When Kind is TokenList, no other field is set: the ListStart token
	// has already been consumed and the caller must drive element reads
	// until ReadListEnd.
}

// Reader wraps a Tokenizer with a one-token peek buffer, giving the
// decoder lookahead (to check for an empty list, or the closing paren of a
// variable-length sequence) without disturbing location tracking: the
// tokenizer only ever advances once per distinct token, cached across
// repeated peeks.
type Reader struct {
	tok    *Tokenizer
	peeked Token
	perr   *zlisp.Error
	have   bool
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{tok: NewTokenizer(buf)}
}

func (r *Reader) peek() (Token, *zlisp.Error) {
	if !r.have {
		r.peeked, r.perr = r.tok.Next()
		r.have = true
	}
	return r.peeked, r.perr
}

func (r *Reader) take() (Token, *zlisp.Error) {
	tok, err := r.peek()
	r.have = false
	return tok, err
}

// Line and Col report the location of the next unconsumed token, stable
// across any number of peeks.
func (r *Reader) Line() int {
	tok, _ := r.peek()
	return tok.Line
}

func (r *Reader) Col() int {
	tok, _ := r.peek()
	return tok.Col
}

func (r *Reader) loc() zlisp.Location {
	tok, _ := r.peek()
	return zlisp.LineColumn(tok.Line, tok.Col)
}

// PeekIsListEnd reports whether the next token is `)`, without consuming
// it. Used by seq/map decoding to find the end of a variable-length run,
// and by Option decoding to distinguish None from Some.
func (r *Reader) PeekIsListEnd() (bool, *zlisp.Error) {
	tok, err := r.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == TokListEnd, nil
}

// ReadListStart consumes a `(` token.
func (r *Reader) ReadListStart() *zlisp.Error {
	tok, err := r.take()
	if err != nil {
		return err
	}
	if tok.Kind != TokListStart {
		return zlisp.NewExpectedToken(zlisp.TokenList, structuralAsTokenKind(tok)).WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return nil
}

// ReadListEnd consumes a `)` token.
func (r *Reader) ReadListEnd() *zlisp.Error {
	tok, err := r.take()
	if err != nil {
		return err
	}
	if tok.Kind != TokListEnd {
		return zlisp.NewExpectedToken(zlisp.TokenList, structuralAsTokenKind(tok)).WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return nil
}

// ReadList brackets f between a `(` and a `)`.
func (r *Reader) ReadList(f func() *zlisp.Error) *zlisp.Error {
	if err := r.ReadListStart(); err != nil {
		return err
	}
	if err := f(); err != nil {
		return err
	}
	return r.ReadListEnd()
}

// Finish requires the stream be fully consumed (Eof next).
func (r *Reader) Finish() *zlisp.Error {
	tok, err := r.peek()
	if err != nil {
		return err
	}
	if tok.Kind != TokEof {
		return zlisp.NewTrailingData().WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return nil
}

func structuralAsTokenKind(tok Token) zlisp.TokenKind {
	switch tok.Kind {
	case TokListStart, TokListEnd:
		return zlisp.TokenList
	case TokEof:
		return zlisp.TokenEof
	default:
		return zlisp.TokenString
	}
}

func (r *Reader) readScalar() (Token, *zlisp.Error) {
	tok, err := r.take()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokText {
		return Token{}, zlisp.NewExpectedToken(zlisp.TokenString, structuralAsTokenKind(tok)).WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return tok, nil
}

// ReadI32 reads the next token as an integer. A quoted token is never
// numeric.
func (r *Reader) ReadI32() (int32, *zlisp.Error) {
	tok, err := r.readScalar()
	if err != nil {
		return 0, err
	}
	if tok.Quoted {
		return 0, zlisp.NewQuotedStringNotConvertible().WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	v, perr := ParseIntStrict(tok.Text)
	if perr != nil {
		return 0, perr.WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return v, nil
}

// ReadF32 reads the next token as a float. A quoted token is never
// numeric.
func (r *Reader) ReadF32() (float32, *zlisp.Error) {
	tok, err := r.readScalar()
	if err != nil {
		return 0, err
	}
	if tok.Quoted {
		return 0, zlisp.NewQuotedStringNotConvertible().WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	v, perr := ParseFloatStrict(tok.Text)
	if perr != nil {
		return 0, perr.WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
	return v, nil
}

// ReadString reads the next token as a string, verbatim regardless of
// whether it was quoted or looks numeric.
func (r *Reader) ReadString() (string, *zlisp.Error) {
	tok, err := r.readScalar()
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

// ReadAny classifies the next token without committing to a type: a
// scalar is parsed as-any (integer, else float, else string); a `(`
// begins a list, consumed here, leaving the caller to drive elements up
// to the matching ReadListEnd.
func (r *Reader) ReadAny() (AnyToken, *zlisp.Error) {
	tok, err := r.peek()
	if err != nil {
		return AnyToken{}, err
	}
	switch tok.Kind {
	case TokListStart:
		r.take()
		return AnyToken{Kind: zlisp.TokenList}, nil
	case TokText:
		r.take()
		if tok.Quoted {
			return AnyToken{Kind: zlisp.TokenString, Str: tok.Text}, nil
		}
		kind, i, f := ParseAny(tok.Text)
		switch kind {
		case zlisp.TokenInt:
			return AnyToken{Kind: zlisp.TokenInt, Int: i}, nil
		case zlisp.TokenFloat:
			return AnyToken{Kind: zlisp.TokenFloat, Flt: f}, nil
		default:
			return AnyToken{Kind: zlisp.TokenString, Str: tok.Text}, nil
		}
	default:
		return AnyToken{}, zlisp.NewInvalidTokenType().WithLocation(zlisp.LineColumn(tok.Line, tok.Col))
	}
}

// ReportedVersion diagnoses producerVersion (a zlisp.Version string the
// caller obtained out-of-band) against zlisp.MinSupportedVersion. The text
// format carries no version token of its own, so this never affects
// decoding; see zlisp.VersionWarning.
func (r *Reader) ReportedVersion(producerVersion string) string {
	return zlisp.VersionWarning(producerVersion)
}
