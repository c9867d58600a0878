// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import "testing"

func TestValidateInOffsets(t *testing.T) {
	tests := []struct {
		name   string
		b      []byte
		base   int
		kind   ErrorKind
		offset int
	}{
		{"ok", []byte("foo"), 10, 0, 0},
		{"null", []byte("fo\x00o"), 10, KindStringContainsNull, 12},
		{"quote", []byte("fo\"o"), 10, KindStringContainsQuote, 12},
		{"highbit", []byte("fo\x80o"), 10, KindStringContainsInvalidByte, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIn(tt.b, tt.base)
			if tt.name == "ok" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", err.Kind, tt.kind)
			}
			loc, ok := err.GetLocation()
			if !ok || loc.Offset != tt.offset {
				t.Errorf("offset = %+v, want %d", loc, tt.offset)
			}
		})
	}
}

func TestValidateInTooLong(t *testing.T) {
	b := make([]byte, MaxStringLen+1)
	for i := range b {
		b[i] = 'a'
	}
	err := ValidateIn(b, 0)
	if err == nil || err.Kind != KindStringTooLong {
		t.Fatalf("expected StringTooLong, got %v", err)
	}
	ok := ValidateIn(b[:MaxStringLen], 0)
	if ok != nil {
		t.Fatalf("255 bytes should validate: %v", ok)
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"foo", false},
		{"foo bar", true},
		{"foo(bar)", true},
		{"42", true},
		{"-1", true},
		{"--", true},
		{".", true},
		{"foo42", false},
	}
	for _, tt := range tests {
		if got := NeedsQuoting(tt.s); got != tt.want {
			t.Errorf("NeedsQuoting(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestErrorLocationFirstAttachWins(t *testing.T) {
	err := NewTrailingData()
	err.WithLocation(ByteOffset(5))
	err.WithLocation(ByteOffset(9))
	loc, ok := err.GetLocation()
	if !ok || loc.Offset != 5 {
		t.Errorf("first attach should win, got %+v", loc)
	}
}

func TestValueEqual(t *testing.T) {
	a := List(Int32(1), String("x"), List(Float32(1.5)))
	b := List(Int32(1), String("x"), List(Float32(1.5)))
	c := List(Int32(2))
	if !a.Equal(b) {
		t.Errorf("expected equal values")
	}
	if a.Equal(c) {
		t.Errorf("expected unequal values")
	}
}

func TestValueStringRendering(t *testing.T) {
	v := List(Int32(1), String("42"), String("hi"))
	if got, want := v.String(), `(1 "42" hi)`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
