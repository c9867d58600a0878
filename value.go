// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ValueKind discriminates the variant a [Value] holds.
type ValueKind uint8

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueList
)

// Value is the untyped tagged-union carrier described in spec.md §4.10: a
// fallback representation for callers that do not have a compile-time shape
// to decode into (a generic transcoder, a fuzz harness, ad-hoc inspection).
// A Value implements the binding protocol trivially: encoding dispatches on
// Kind, and decoding is driven by [DecodeValue].
type Value struct {
	Kind ValueKind
	Int  int32
	Flt  float32
	Str  string
	List []Value
}

// Int32 constructs an integer Value.
func Int32(v int32) Value { return Value{Kind: ValueInt, Int: v} }

// Float32 constructs a float Value.
func Float32(v float32) Value { return Value{Kind: ValueFloat, Flt: v} }

// String constructs a string Value.
func String(v string) Value { return Value{Kind: ValueString, Str: v} }

// List constructs a list Value.
func List(v ...Value) Value { return Value{Kind: ValueList, List: v} }

// Equal reports deep equality between two Values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueInt:
		return v.Int == o.Int
	case ValueFloat:
		return v.Flt == o.Flt
	case ValueString:
		return v.Str == o.Str
	case ValueList:
		if len(v.List) != len(o.List) {
			return false
		}
		return slices.EqualFunc(v.List, o.List, Value.Equal)
	default:
		return false
	}
}

// Encode drives s with the contents of v.
func (v Value) Encode(s Serializer) error {
	switch v.Kind {
	case ValueInt:
		return s.EmitI32(v.Int)
	case ValueFloat:
		return s.EmitF32(v.Flt)
	case ValueString:
		return s.EmitStr(v.Str)
	case ValueList:
		n := len(v.List)
		seq, err := s.BeginSeq(&n)
		if err != nil {
			return err
		}
		for _, elem := range v.List {
			if err := seq.Element(elem.Encode); err != nil {
				return err
			}
		}
		return seq.End()
	default:
		return NewUnsupportedType()
	}
}

// Decode decodes the next value from d into *v, implementing the same
// self-decoding escape hatch [Unmarshal] gives any type with a Decode
// method, so a *Value can appear anywhere a typed destination can.
func (v *Value) Decode(d Deserializer) error {
	val, err := DecodeValue(d)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// DecodeValue decodes the next value from d into a generic Value, the way
// "decode-any" does in spec.md §4.9: dispatching on whichever token is
// actually present rather than demanding a specific shape.
func DecodeValue(d Deserializer) (Value, error) {
	var out Value
	err := d.DecodeAny(valueVisitor{out: &out})
	return out, err
}

// valueVisitor implements [Visitor] by building a [Value] of whatever shape
// the decoder actually hands it. Shapes a Value cannot hold fall through to
// the embedded [BaseVisitor].
type valueVisitor struct {
	BaseVisitor
	out *Value
}

func (vv valueVisitor) VisitI32(v int32) error {
	*vv.out = Int32(v)
	return nil
}

func (vv valueVisitor) VisitF32(v float32) error {
	*vv.out = Float32(v)
	return nil
}

func (vv valueVisitor) VisitStr(v string) error {
	*vv.out = String(v)
	return nil
}

func (vv valueVisitor) VisitSeq(seq SeqAccess) error {
	var elems []Value
	for {
		var elem Value
		ok, err := seq.NextElement(elem.Decode)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	*vv.out = Value{Kind: ValueList, List: elems}
	return nil
}

// String renders v in compact form: a single line, space-separated, lists
// parenthesized.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b, false, 0)
	return b.String()
}

// Pretty renders v with one element per tab-indented line for every
// non-empty list. Unlike the text codec's pretty writer, it applies no
// compactness threshold: short lists are expanded too.
func (v Value) Pretty() string {
	var b strings.Builder
	v.render(&b, true, 0)
	return b.String()
}

func (v Value) render(b *strings.Builder, pretty bool, depth int) {
	switch v.Kind {
	case ValueInt:
		b.WriteString(strconv.FormatInt(int64(v.Int), 10))
	case ValueFloat:
		b.WriteString(strconv.FormatFloat(float64(v.Flt), 'g', -1, 32))
	case ValueString:
		if NeedsQuoting(v.Str) {
			b.WriteByte('"')
			b.WriteString(v.Str)
			b.WriteByte('"')
		} else {
			b.WriteString(v.Str)
		}
	case ValueList:
		b.WriteByte('(')
		for i, elem := range v.List {
			if pretty {
				b.WriteByte('\n')
				b.WriteString(strings.Repeat("\t", depth+1))
			} else if i > 0 {
				b.WriteByte(' ')
			}
			elem.render(b, pretty, depth+1)
		}
		if pretty && len(v.List) > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("\t", depth))
		}
		b.WriteByte(')')
	}
}
