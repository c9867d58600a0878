// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fields parses `zlisp:"..."` struct tags and walks exported struct
// fields for the reflection-driven binding layer. It is adapted from
// codello.dev/asn1's internal struct-tag parser, generalized from ASN.1's
// class/tag/explicit vocabulary to zlisp's much smaller name/ignore/
// omitzero one.
package fields

import (
	"iter"
	"reflect"
	"strings"
)

// Params is the parsed representation of a `zlisp:"..."` struct tag.
type Params struct {
	Ignore   bool   // true iff this field should be skipped entirely
	Name     string // overrides the field's wire name; empty means use the Go field name
	OmitZero bool   // true iff a zero-valued field is skipped on encode
}

// ParseTag parses the contents of a `zlisp:"..."` struct tag. Unknown parts
// are ignored, matching the teacher's forward-compatible parsing style.
func ParseTag(tag string) (p Params) {
	if tag == "" {
		return p
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		p.Ignore = true
	} else if parts[0] != "" {
		p.Name = parts[0]
	}
	for _, part := range parts[1:] {
		switch part {
		case "omitzero":
			p.OmitZero = true
		}
	}
	return p
}

// WireName returns the field's wire name: the struct tag override if
// present, else the Go field name.
func WireName(f reflect.StructField, p Params) string {
	if p.Name != "" {
		return p.Name
	}
	return f.Name
}

// Field pairs a reflect.Value for one struct field with its parsed tag
// parameters and resolved wire name.
type Field struct {
	Value reflect.Value
	Name  string
	Params
}

// StructFields returns a sequence over the exported, non-ignored fields of
// v, which must be a struct. Fields of anonymous (embedded) struct members
// are yielded as if they belonged to the surrounding struct, the same
// flattening behavior as encoding/json and the teacher's StructFields.
func StructFields(v reflect.Value) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		structFields(v, yield)
	}
}

func structFields(v reflect.Value, yield func(Field) bool) bool {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		params := ParseTag(sf.Tag.Get("zlisp"))
		if params.Ignore || !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous && params.Name == "" && fv.Kind() == reflect.Struct {
			if !structFields(fv, yield) {
				return false
			}
			continue
		}
		if !yield(Field{Value: fv, Name: WireName(sf, params), Params: params}) {
			return false
		}
	}
	return true
}

// IsZero reports whether v holds its zero value, used to implement
// omitzero. This delegates to reflect.Value.IsZero (available since Go
// 1.13), matching the teacher's own omitzero support.
func IsZero(v reflect.Value) bool {
	return v.IsZero()
}
