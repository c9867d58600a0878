// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"reflect"
	"testing"
)

func TestStructFields(t *testing.T) {
	type Embedded struct{ A, B int }
	tests := map[string]struct {
		value any
		want  int
	}{
		"Simple": {struct{ A, B int }{}, 2},
		"Ignored": {struct {
			A int
			B int `zlisp:"-"`
			C string
		}{}, 2},
		"Embedded": {
			struct {
				X string
				Embedded
			}{}, 3,
		},
		"NonExported": {
			struct {
				a int
				B int
			}{}, 1,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := 0
			for range StructFields(reflect.ValueOf(tt.value)) {
				got++
			}
			if got != tt.want {
				t.Errorf("StructFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Params
	}{
		{"", Params{}},
		{"-", Params{Ignore: true}},
		{"foo", Params{Name: "foo"}},
		{"foo,omitzero", Params{Name: "foo", OmitZero: true}},
		{",omitzero", Params{OmitZero: true}},
	}
	for _, tt := range tests {
		if got := ParseTag(tt.tag); got != tt.want {
			t.Errorf("ParseTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
		}
	}
}

func TestWireName(t *testing.T) {
	type S struct {
		Named   string `zlisp:"custom"`
		Default string
	}
	typ := reflect.TypeOf(S{})
	named := typ.Field(0)
	if got := WireName(named, ParseTag(named.Tag.Get("zlisp"))); got != "custom" {
		t.Errorf("WireName(Named) = %q, want custom", got)
	}
	def := typ.Field(1)
	if got := WireName(def, ParseTag(def.Tag.Get("zlisp"))); got != "Default" {
		t.Errorf("WireName(Default) = %q, want Default", got)
	}
}
