// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import (
	"reflect"

	"github.com/terranmechworks/zlisp/internal/fields"
)

// selfEncoder is implemented by types (such as [Value]) that drive the
// Serializer themselves instead of being walked structurally. It is the
// generic binding layer's escape hatch, the same role the teacher's
// BerEncoder interface plays for codello.dev/asn1.
type selfEncoder interface {
	Encode(s Serializer) error
}

// Marshal drives s with the contents of v, which may be any of: an int32,
// a float32, a string, a pointer (nil encodes as None, non-nil as Some of
// the pointee), a slice or array (not of bytes) of a supported element
// type, a map with int32 or string keys, a struct, a type implementing
// [Enum], or a type implementing the self-encoding Encode(Serializer) error
// method (as [Value] does).
func Marshal(s Serializer, v any) error {
	if v == nil {
		return NewUnsupportedType()
	}
	if e, ok := v.(selfEncoder); ok {
		return e.Encode(s)
	}
	if e, ok := v.(Enum); ok {
		return encodeEnum(s, e)
	}
	return encodeValue(s, reflect.ValueOf(v))
}

func encodeEnum(s Serializer, e Enum) error {
	enumName := e.EnumName()
	name, kind, payload := e.EncodeVariant()
	switch kind {
	case VariantUnit:
		return s.EmitUnitVariant(enumName, name)
	case VariantNewtype:
		return s.EmitNewtypeVariant(enumName, name, payload)
	case VariantTuple, VariantStruct:
		if payload == nil {
			return NewUnsupportedType()
		}
		return payload(s)
	default:
		return NewUnsupportedType()
	}
}

func encodeValue(s Serializer, rv reflect.Value) error {
	if !rv.IsValid() {
		return NewUnsupportedType()
	}
	if rv.CanInterface() {
		if e, ok := rv.Interface().(selfEncoder); ok {
			return e.Encode(s)
		}
		if e, ok := rv.Interface().(Enum); ok {
			return encodeEnum(s, e)
		}
	}

	switch rv.Kind() {
	case reflect.Int32:
		return s.EmitI32(int32(rv.Int()))
	case reflect.Float32:
		return s.EmitF32(float32(rv.Float()))
	case reflect.String:
		return s.EmitStr(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return s.EmitNone()
		}
		elem := rv.Elem()
		return s.EmitSome(func(s Serializer) error { return encodeValue(s, elem) })
	case reflect.Slice:
		if rv.IsNil() {
			return s.EmitNone()
		}
		return encodeSeq(s, rv)
	case reflect.Array:
		return encodeTuple(s, rv)
	case reflect.Map:
		return encodeMap(s, rv)
	case reflect.Struct:
		return encodeStruct(s, rv)
	case reflect.Interface:
		if rv.IsNil() {
			return NewUnsupportedType()
		}
		return encodeValue(s, rv.Elem())
	default:
		return NewUnsupportedType()
	}
}

func encodeSeq(s Serializer, rv reflect.Value) error {
	n := rv.Len()
	seq, err := s.BeginSeq(&n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		elem := rv.Index(i)
		if err := seq.Element(func(s Serializer) error { return encodeValue(s, elem) }); err != nil {
			return err
		}
	}
	return seq.End()
}

func encodeTuple(s Serializer, rv reflect.Value) error {
	n := rv.Len()
	seq, err := s.BeginTuple(n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		elem := rv.Index(i)
		if err := seq.Element(func(s Serializer) error { return encodeValue(s, elem) }); err != nil {
			return err
		}
	}
	return seq.End()
}

func encodeMap(s Serializer, rv reflect.Value) error {
	if rv.IsNil() {
		return s.EmitNone()
	}
	keys := rv.MapKeys()
	sortMapKeys(keys)
	n := len(keys)
	m, err := s.BeginMap(&n)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := m.Key(func(s Serializer) error { return encodeValue(s, k) }); err != nil {
			return err
		}
		v := rv.MapIndex(k)
		if err := m.Value(func(s Serializer) error { return encodeValue(s, v) }); err != nil {
			return err
		}
	}
	return m.End()
}

// sortMapKeys orders map keys deterministically so that repeated encodes of
// the same map produce byte-identical output. Only string and int32 keys
// are supported (the only scalar key types zlisp itself supports).
func sortMapKeys(keys []reflect.Value) {
	less := func(i, j int) bool {
		switch keys[i].Kind() {
		case reflect.String:
			return keys[i].String() < keys[j].String()
		case reflect.Int32:
			return keys[i].Int() < keys[j].Int()
		default:
			return false
		}
	}
	// Insertion sort: map key counts are small, and this avoids pulling in
	// sort.Slice's reflection-based swapper for a handful of keys.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

func encodeStruct(s Serializer, rv reflect.Value) error {
	type fieldEnc struct {
		name string
		val  reflect.Value
	}
	var encs []fieldEnc
	for f := range fields.StructFields(rv) {
		if f.OmitZero && fields.IsZero(f.Value) {
			continue
		}
		encs = append(encs, fieldEnc{f.Name, f.Value})
	}
	st, err := s.BeginStruct(rv.Type().Name(), len(encs))
	if err != nil {
		return err
	}
	for _, f := range encs {
		v := f.val
		if err := st.Field(f.name, func(s Serializer) error { return encodeValue(s, v) }); err != nil {
			return err
		}
	}
	return st.End()
}
