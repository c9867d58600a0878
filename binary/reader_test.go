// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"testing"

	"github.com/terranmechworks/zlisp"
)

func TestReadI32(t *testing.T) {
	// outer LIST(count=2), INT tag=1, value=7
	buf := []byte{
		0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00,
	}
	r := NewReader(buf)
	n, _, err := r.ReadListHeader()
	if err != nil {
		t.Fatalf("outer wrapper: %v", err)
	}
	if n != 1 {
		t.Fatalf("outer element count = %d, want 1", n)
	}
	v, err := r.ReadI32()
	if err != nil {
		t.Fatalf("ReadI32: %v", err)
	}
	if v != 7 {
		t.Errorf("value = %d, want 7", v)
	}
	if err := r.Finish(); err != nil {
		t.Errorf("Finish: %v", err)
	}
}

func TestReadStr(t *testing.T) {
	// outer LIST(count=2), STRING tag=3, length=3, "foo"
	buf := []byte{
		0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00,
		0x66, 0x6f, 0x6f,
	}
	r := NewReader(buf)
	if _, _, err := r.ReadListHeader(); err != nil {
		t.Fatalf("outer wrapper: %v", err)
	}
	s, err := r.ReadStr()
	if err != nil {
		t.Fatalf("ReadStr: %v", err)
	}
	if s != "foo" {
		t.Errorf("value = %q, want foo", s)
	}
}

func TestReadListOfIntTrailingData(t *testing.T) {
	// outer LIST(count=2), LIST(count=3), INT 1, INT 2, plus one trailing
	// zero byte.
	buf := []byte{
		0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x00,
	}
	r := NewReader(buf)
	if _, _, err := r.ReadListHeader(); err != nil {
		t.Fatalf("outer wrapper: %v", err)
	}
	n, _, err := r.ReadListHeader()
	if err != nil {
		t.Fatalf("inner list header: %v", err)
	}
	if n != 2 {
		t.Fatalf("inner element count = %d, want 2", n)
	}
	for i := 0; i < 2; i++ {
		if _, err := r.ReadI32(); err != nil {
			t.Fatalf("ReadI32[%d]: %v", i, err)
		}
	}
	err = r.Finish()
	if err == nil || err.Kind != zlisp.KindTrailingData {
		t.Fatalf("Finish: got %v, want TrailingData", err)
	}
	loc, ok := err.GetLocation()
	if !ok || loc.Offset != 28 {
		t.Errorf("location = %+v, want offset 28", loc)
	}
}

func TestReadInvalidTokenType(t *testing.T) {
	// outer wrapper correct, inner tag byte invalid (5).
	buf := []byte{
		0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00,
	}
	r := NewReader(buf)
	if _, _, err := r.ReadListHeader(); err != nil {
		t.Fatalf("outer wrapper: %v", err)
	}
	_, err := r.ReadAny()
	if err == nil || err.Kind != zlisp.KindInvalidTokenType {
		t.Fatalf("ReadAny: got %v, want InvalidTokenType", err)
	}
	loc, ok := err.GetLocation()
	if !ok || loc.Offset != 8 {
		t.Errorf("location = %+v, want offset 8", loc)
	}
}

func TestReadAnyDispatch(t *testing.T) {
	w := NewWriter()
	if err := w.WriteStr("hi"); err != nil {
		t.Fatalf("WriteStr: %v", err)
	}
	r := NewReader(w.Bytes())
	tok, err := r.ReadAny()
	if err != nil {
		t.Fatalf("ReadAny: %v", err)
	}
	if tok.Kind != zlisp.TokenString || tok.Str != "hi" {
		t.Errorf("token = %+v, want Str hi", tok)
	}
}

func TestReadAnyList(t *testing.T) {
	w := NewWriter()
	if err := w.WriteListHeader(3); err != nil {
		t.Fatalf("WriteListHeader: %v", err)
	}
	r := NewReader(w.Bytes())
	tok, err := r.ReadAny()
	if err != nil {
		t.Fatalf("ReadAny: %v", err)
	}
	if tok.Kind != zlisp.TokenList || tok.Len != 3 {
		t.Errorf("token = %+v, want List len 3", tok)
	}
}

func TestInsufficientData(t *testing.T) {
	r := NewReader([]byte{0x01, 0x00})
	_, err := r.ReadI32()
	if err == nil || err.Kind != zlisp.KindInsufficientData {
		t.Fatalf("ReadI32: got %v, want InsufficientData", err)
	}
}
