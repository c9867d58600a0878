// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"bytes"
	"testing"

	"github.com/terranmechworks/zlisp"
)

func TestWriteI32(t *testing.T) {
	w := NewWriter()
	if err := w.WriteI32(7); err != nil {
		t.Fatalf("WriteI32: %v", err)
	}
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
}

func TestWriteStr(t *testing.T) {
	w := NewWriter()
	if err := w.WriteStr("foo"); err != nil {
		t.Fatalf("WriteStr: %v", err)
	}
	want := []byte{0x03, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x66, 0x6f, 0x6f}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
}

func TestWriteStrRejectsInvalidBytes(t *testing.T) {
	w := NewWriter()
	err := w.WriteStr("f\x00o")
	if err == nil || err.Kind != zlisp.KindStringContainsNull {
		t.Fatalf("WriteStr: got %v, want StringContainsNull", err)
	}
}

func TestWriteListHeaderOverflow(t *testing.T) {
	w := NewWriter()
	err := w.WriteListHeader(zlisp.MaxListLen + 1)
	if err == nil || err.Kind != zlisp.KindSequenceTooLong {
		t.Fatalf("WriteListHeader: got %v, want SequenceTooLong", err)
	}
}

func TestWriteListHeaderAtLimit(t *testing.T) {
	w := NewWriter()
	if err := w.WriteListHeader(zlisp.MaxListLen); err != nil {
		t.Fatalf("WriteListHeader at limit: %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	if err := w.WriteListHeader(2); err != nil {
		t.Fatalf("WriteListHeader: %v", err)
	}
	if err := w.WriteI32(1); err != nil {
		t.Fatalf("WriteI32: %v", err)
	}
	if err := w.WriteI32(2); err != nil {
		t.Fatalf("WriteI32: %v", err)
	}

	r := NewReader(w.Bytes())
	n, _, err := r.ReadListHeader()
	if err != nil {
		t.Fatalf("ReadListHeader: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	for i, want := range []int32{1, 2} {
		v, err := r.ReadI32()
		if err != nil {
			t.Fatalf("ReadI32[%d]: %v", i, err)
		}
		if v != want {
			t.Errorf("ReadI32[%d] = %d, want %d", i, v, want)
		}
	}
	if err := r.Finish(); err != nil {
		t.Errorf("Finish: %v", err)
	}
}
