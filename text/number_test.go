// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/terranmechworks/zlisp"
)

func TestParseIntStrict(t *testing.T) {
	cases := []struct {
		in      string
		want    int32
		wantErr bool
	}{
		{"0", 0, false},
		{"-1", -1, false},
		{"+7", 7, false},
		{"", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"99999999999999", 0, true}, // overflow
	}
	for _, c := range cases {
		v, err := ParseIntStrict(c.in)
		if c.wantErr {
			if err == nil || err.Kind != zlisp.KindParseIntError {
				t.Errorf("ParseIntStrict(%q): got %v, want ParseIntError", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseIntStrict(%q): %v", c.in, err)
			continue
		}
		if v != c.want {
			t.Errorf("ParseIntStrict(%q) = %d, want %d", c.in, v, c.want)
		}
	}
}

func TestParseFloatStrictRejectsExponentAndInf(t *testing.T) {
	for _, in := range []string{"1e10", "inf", "nan", "-inf", "1E5"} {
		if _, err := ParseFloatStrict(in); err == nil || err.Kind != zlisp.KindParseFloatError {
			t.Errorf("ParseFloatStrict(%q): got %v, want ParseFloatError", in, err)
		}
	}
}

func TestParseFloatStrictAccepts(t *testing.T) {
	cases := map[string]float32{
		"0":      0,
		"-1.5":   -1.5,
		"+2.0":   2.0,
		"3.":     3,
		".5":     0.5,
	}
	for in, want := range cases {
		v, err := ParseFloatStrict(in)
		if err != nil {
			t.Errorf("ParseFloatStrict(%q): %v", in, err)
			continue
		}
		if v != want {
			t.Errorf("ParseFloatStrict(%q) = %v, want %v", in, v, want)
		}
	}
}

func TestParseAnyClassification(t *testing.T) {
	if kind, i, _ := ParseAny("42"); kind != zlisp.TokenInt || i != 42 {
		t.Errorf("ParseAny(42) = %v %d, want Int 42", kind, i)
	}
	if kind, _, f := ParseAny("4.2"); kind != zlisp.TokenFloat || f != 4.2 {
		t.Errorf("ParseAny(4.2) = %v %v, want Float 4.2", kind, f)
	}
	if kind, _, _ := ParseAny("hello"); kind != zlisp.TokenString {
		t.Errorf("ParseAny(hello) = %v, want String", kind)
	}
	// the exponent puts it outside both the integer and the restricted
	// float grammar, so ParseAny falls through to string.
	if kind, _, _ := ParseAny("1e10"); kind != zlisp.TokenString {
		t.Errorf("ParseAny(1e10) = %v, want String", kind)
	}
}
