// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"encoding/binary"
	"math"

	"github.com/terranmechworks/zlisp"
)

// Writer encodes zlisp binary tokens to an in-memory buffer. The zero value
// is an empty Writer ready for use; [NewWriter] returns one.
type Writer struct {
	buf []byte
}

// NewWriter constructs an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Writer's internal buffer and is invalidated by further writes.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) putI32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) putF32(v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) putTag(t Tag) { w.putI32(int32(t)) }

// WriteI32 writes a tagged 32-bit integer.
func (w *Writer) WriteI32(v int32) *zlisp.Error {
	w.putTag(TagInt)
	w.putI32(v)
	return nil
}

// WriteF32 writes a tagged IEEE-754 binary32 float.
func (w *Writer) WriteF32(v float32) *zlisp.Error {
	w.putTag(TagFloat)
	w.putF32(v)
	return nil
}

// WriteStr writes a tagged, length-prefixed string. s must already satisfy
// the zlisp string alphabet (7-bit ASCII, no NUL or quote, at most
// [zlisp.MaxStringLen] bytes); [zlisp.ValidateOut] is applied here so that
// callers never have to remember to call it themselves.
func (w *Writer) WriteStr(s string) *zlisp.Error {
	if err := zlisp.ValidateOut(s); err != nil {
		return err
	}
	w.putTag(TagString)
	w.putI32(int32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// WriteListHeader writes a tagged list header for a list of n elements. The
// stored length field is n+1, matching the format's "one past the element
// count" convention (spec.md §2.2).
func (w *Writer) WriteListHeader(n int) *zlisp.Error {
	if n > zlisp.MaxListLen {
		return zlisp.NewSequenceTooLong()
	}
	w.putTag(TagList)
	w.putI32(int32(n) + 1)
	return nil
}
