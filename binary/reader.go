// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/terranmechworks/zlisp"
)

// Reader decodes a zlisp binary payload from an in-memory byte slice. A
// Reader owns an immutable view of its input; strings it returns are
// borrowed slices into that input, valid for as long as the input buffer
// is (spec.md §3's zero-copy lifetime rule), not owned copies.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader constructs a Reader over buf. buf is not copied; the caller
// must not mutate it while the Reader (or any string it returned) is in
// use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the reader's current byte offset within the original
// input, for callers that want to attach their own diagnostics.
func (r *Reader) Offset() int { return r.offset }

// takeN consumes exactly n bytes and advances the cursor, or fails with
// InsufficientData at the current offset.
func (r *Reader) takeN(n int) ([]byte, *zlisp.Error) {
	if n > len(r.buf) {
		return nil, zlisp.NewInsufficientData(n, len(r.buf)).WithLocation(zlisp.ByteOffset(r.offset))
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	r.offset += n
	return b, nil
}

func (r *Reader) takeI32() (int32, *zlisp.Error) {
	b, err := r.takeN(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (r *Reader) takeF32() (float32, *zlisp.Error) {
	b, err := r.takeN(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// expectTag consumes the next 4-byte tag and requires it to equal want,
// reporting ExpectedToken (or InvalidTokenType, for a tag value outside the
// four recognized ones) at the tag's own offset otherwise.
func (r *Reader) expectTag(want Tag, wantKind zlisp.TokenKind) *zlisp.Error {
	tagOffset := r.offset
	if len(r.buf) == 0 {
		return zlisp.NewExpectedToken(wantKind, zlisp.TokenEof).WithLocation(zlisp.ByteOffset(tagOffset))
	}
	raw, err := r.takeI32()
	if err != nil {
		return err
	}
	tag := Tag(raw)
	if tag != want {
		found, ok := tag.tokenKind()
		if !ok {
			return zlisp.NewInvalidTokenType().WithLocation(zlisp.ByteOffset(tagOffset))
		}
		return zlisp.NewExpectedToken(wantKind, found).WithLocation(zlisp.ByteOffset(tagOffset))
	}
	return nil
}

// readStrPayload reads a string's length-prefixed payload; the STRING tag
// itself must already have been consumed.
func (r *Reader) readStrPayload() (string, *zlisp.Error) {
	lenOffset := r.offset
	n, err := r.takeI32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", zlisp.NewInvalidStringLength().WithLocation(zlisp.ByteOffset(lenOffset))
	}
	if n > zlisp.MaxStringLen {
		return "", zlisp.NewStringTooLong().WithLocation(zlisp.ByteOffset(lenOffset))
	}
	strOffset := r.offset
	b, err := r.takeN(int(n))
	if err != nil {
		return "", err
	}
	if verr := zlisp.ValidateIn(b, strOffset); verr != nil {
		return "", verr
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// readListPayload reads a list's length field and returns the number of
// elements that follow, plus the byte offset of the length field itself
// (used by the outer-wrapper check). The LIST tag itself must already have
// been consumed.
func (r *Reader) readListPayload() (elements int, fieldOffset int, zerr *zlisp.Error) {
	fieldOffset = r.offset
	count, err := r.takeI32()
	if err != nil {
		return 0, 0, err
	}
	if count <= 0 {
		return 0, fieldOffset, zlisp.NewInvalidListLength().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	elements = int(count) - 1
	if elements > zlisp.MaxListLen {
		return 0, fieldOffset, zlisp.NewSequenceTooLong().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return elements, fieldOffset, nil
}

// ReadI32 reads a tagged 32-bit integer.
func (r *Reader) ReadI32() (int32, *zlisp.Error) {
	if err := r.expectTag(TagInt, zlisp.TokenInt); err != nil {
		return 0, err
	}
	return r.takeI32()
}

// ReadF32 reads a tagged IEEE-754 binary32 float.
func (r *Reader) ReadF32() (float32, *zlisp.Error) {
	if err := r.expectTag(TagFloat, zlisp.TokenFloat); err != nil {
		return 0, err
	}
	return r.takeF32()
}

// ReadStr reads a tagged, length-prefixed string and returns it as a
// zero-copy borrow into the Reader's source buffer.
func (r *Reader) ReadStr() (string, *zlisp.Error) {
	if err := r.expectTag(TagString, zlisp.TokenString); err != nil {
		return "", err
	}
	return r.readStrPayload()
}

// ReadListHeader reads a tagged list's length field and returns the number
// of elements that follow, along with the byte offset of the length field
// itself (for error attribution by callers that reject the count for
// shape reasons, e.g. the outer wrapper check).
func (r *Reader) ReadListHeader() (elements int, fieldOffset int, zerr *zlisp.Error) {
	if err := r.expectTag(TagList, zlisp.TokenList); err != nil {
		return 0, 0, err
	}
	return r.readListPayload()
}

// Token is the result of ReadAny: exactly one of the fields is meaningful,
// selected by Kind.
type Token struct {
	Kind zlisp.TokenKind
	Int  int32
	Flt  float32
	Str  string
	Len  int // element count, for Kind == TokenList
}

// ReadAny reads whichever token is next without requiring a specific tag,
// the "decode-any" entry point of spec.md §4.9.
func (r *Reader) ReadAny() (Token, *zlisp.Error) {
	tagOffset := r.offset
	if len(r.buf) == 0 {
		return Token{}, zlisp.NewExpectedToken(zlisp.TokenInt, zlisp.TokenEof).WithLocation(zlisp.ByteOffset(tagOffset))
	}
	raw, err := r.takeI32()
	if err != nil {
		return Token{}, err
	}
	switch Tag(raw) {
	case TagInt:
		v, err := r.takeI32()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: zlisp.TokenInt, Int: v}, nil
	case TagFloat:
		v, err := r.takeF32()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: zlisp.TokenFloat, Flt: v}, nil
	case TagString:
		s, err := r.readStrPayload()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: zlisp.TokenString, Str: s}, nil
	case TagList:
		n, _, err := r.readListPayload()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: zlisp.TokenList, Len: n}, nil
	default:
		return Token{}, zlisp.NewInvalidTokenType().WithLocation(zlisp.ByteOffset(tagOffset))
	}
}

// Finish reports an error unless the reader has consumed the entire input.
func (r *Reader) Finish() *zlisp.Error {
	if len(r.buf) != 0 {
		return zlisp.NewTrailingData().WithLocation(zlisp.ByteOffset(r.offset))
	}
	return nil
}

// ReportedVersion diagnoses producerVersion (a zlisp.Version string the
// caller obtained out-of-band, e.g. from a transport header) against
// zlisp.MinSupportedVersion, returning a warning string or "" if there is
// nothing to report. The binary format carries no version field of its
// own, so this never affects decoding.
func (r *Reader) ReportedVersion(producerVersion string) string {
	return zlisp.VersionWarning(producerVersion)
}
