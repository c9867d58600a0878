// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import (
	"reflect"

	"golang.org/x/exp/slices"

	"github.com/terranmechworks/zlisp/internal/fields"
)

// selfDecoder is implemented by types (such as *Value) that drive the
// Deserializer themselves instead of being built up structurally.
type selfDecoder interface {
	Decode(d Deserializer) error
}

// Unmarshal decodes the next value from d into *v. v must be a non-nil
// pointer; see [Marshal] for the set of supported pointee shapes.
func Unmarshal(d Deserializer, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewUnsupportedType()
	}
	return decodeInto(d, rv.Elem())
}

func decodeInto(d Deserializer, rv reflect.Value) error {
	if rv.CanAddr() {
		addr := rv.Addr()
		if sd, ok := addr.Interface().(selfDecoder); ok {
			return sd.Decode(d)
		}
		if ed, ok := addr.Interface().(EnumDecoder); ok {
			return d.DecodeEnum(ed.EnumName(), ed.Variants(), enumVisitor{ed})
		}
	}

	switch rv.Kind() {
	case reflect.Int32:
		i, err := d.DecodeI32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(i))
		return nil
	case reflect.Float32:
		f, err := d.DecodeF32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(f))
		return nil
	case reflect.String:
		str, err := d.DecodeStr()
		if err != nil {
			return err
		}
		rv.SetString(str)
		return nil
	case reflect.Pointer:
		return d.DecodeOption(optionVisitor{rv})
	case reflect.Slice:
		return d.DecodeSeq(seqVisitor{rv, rv.Type().Elem()})
	case reflect.Array:
		return d.DecodeTuple(rv.Len(), tupleVisitor{rv})
	case reflect.Map:
		if rv.IsNil() {
			rv.Set(reflect.MakeMap(rv.Type()))
		}
		return d.DecodeMap(mapVisitor{rv, rv.Type().Key(), rv.Type().Elem()})
	case reflect.Struct:
		info := fields.Lookup(rv.Type())
		names := info.Names()
		values := make([]reflect.Value, 0, len(names))
		for f := range fields.StructFields(rv) {
			values = append(values, f.Value)
		}
		return d.DecodeStruct(rv.Type().Name(), names, structVisitor{names: names, values: values})
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return NewUnsupportedType()
		}
		var val Value
		if err := val.Decode(d); err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(val))
		return nil
	default:
		return NewUnsupportedType()
	}
}

// optionVisitor decodes the next value as Option<T> into a pointer field.
type optionVisitor struct{ rv reflect.Value }

func (optionVisitor) VisitI32(int32) error         { return NewUnsupportedType() }
func (optionVisitor) VisitF32(float32) error       { return NewUnsupportedType() }
func (optionVisitor) VisitStr(string) error        { return NewUnsupportedType() }
func (optionVisitor) VisitUnit() error             { return NewUnsupportedType() }
func (optionVisitor) VisitSeq(SeqAccess) error      { return NewUnsupportedType() }
func (optionVisitor) VisitMap(MapAccess) error      { return NewUnsupportedType() }
func (optionVisitor) VisitEnum(EnumAccess) error    { return NewUnsupportedType() }

func (ov optionVisitor) VisitNone() error {
	ov.rv.Set(reflect.Zero(ov.rv.Type()))
	return nil
}

func (ov optionVisitor) VisitSome(d Deserializer) error {
	elem := reflect.New(ov.rv.Type().Elem())
	if err := decodeInto(d, elem.Elem()); err != nil {
		return err
	}
	ov.rv.Set(elem)
	return nil
}

// seqVisitor decodes the next value as a variable-length sequence into a
// slice field.
type seqVisitor struct {
	rv       reflect.Value
	elemType reflect.Type
}

func (seqVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (seqVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (seqVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (seqVisitor) VisitNone() error            { return NewUnsupportedType() }
func (seqVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (seqVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (seqVisitor) VisitMap(MapAccess) error    { return NewUnsupportedType() }
func (seqVisitor) VisitEnum(EnumAccess) error  { return NewUnsupportedType() }

func (sv seqVisitor) VisitSeq(seq SeqAccess) error {
	capHint := 0
	if n, ok := seq.Len(); ok {
		capHint = n
	}
	slice := reflect.MakeSlice(sv.rv.Type(), 0, capHint)
	for {
		elem := reflect.New(sv.elemType).Elem()
		ok, err := seq.NextElement(func(d Deserializer) error { return decodeInto(d, elem) })
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		slice = reflect.Append(slice, elem)
	}
	sv.rv.Set(slice)
	return nil
}

// tupleVisitor decodes the next value as a fixed-length tuple into an array
// field.
type tupleVisitor struct{ rv reflect.Value }

func (tupleVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (tupleVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (tupleVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (tupleVisitor) VisitNone() error            { return NewUnsupportedType() }
func (tupleVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (tupleVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (tupleVisitor) VisitMap(MapAccess) error    { return NewUnsupportedType() }
func (tupleVisitor) VisitEnum(EnumAccess) error  { return NewUnsupportedType() }

func (tv tupleVisitor) VisitSeq(seq SeqAccess) error {
	i := 0
	for i < tv.rv.Len() {
		elem := tv.rv.Index(i)
		ok, err := seq.NextElement(func(d Deserializer) error { return decodeInto(d, elem) })
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		i++
	}
	return nil
}

// mapVisitor decodes the next value as a key/value sequence into a map
// field.
type mapVisitor struct {
	rv                reflect.Value
	keyType, valType  reflect.Type
}

func (mapVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (mapVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (mapVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (mapVisitor) VisitNone() error            { return NewUnsupportedType() }
func (mapVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (mapVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (mapVisitor) VisitSeq(SeqAccess) error    { return NewUnsupportedType() }
func (mapVisitor) VisitEnum(EnumAccess) error  { return NewUnsupportedType() }

func (mv mapVisitor) VisitMap(m MapAccess) error {
	for {
		key := reflect.New(mv.keyType).Elem()
		ok, err := m.NextKey(func(d Deserializer) error { return decodeInto(d, key) })
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		val := reflect.New(mv.valType).Elem()
		if err := m.NextValue(func(d Deserializer) error { return decodeInto(d, val) }); err != nil {
			return err
		}
		mv.rv.SetMapIndex(key, val)
	}
	return nil
}

// structVisitor decodes the next value as a key/value sequence into named
// struct fields. Unrecognized keys are decoded into a discarded generic
// Value so the stream stays aligned, matching spec.md's "struct decode does
// not require length equality" invariant.
type structVisitor struct {
	names  []string
	values []reflect.Value
}

func (structVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (structVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (structVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (structVisitor) VisitNone() error            { return NewUnsupportedType() }
func (structVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (structVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (structVisitor) VisitSeq(SeqAccess) error    { return NewUnsupportedType() }
func (structVisitor) VisitEnum(EnumAccess) error  { return NewUnsupportedType() }

func (sv structVisitor) VisitMap(m MapAccess) error {
	for {
		var key string
		ok, err := m.NextKey(func(d Deserializer) error {
			k, err := d.DecodeStr()
			if err != nil {
				return err
			}
			key = k
			return nil
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		i := slices.IndexFunc(sv.names, func(n string) bool { return n == key })
		if i < 0 {
			var discard Value
			if err := m.NextValue(discard.Decode); err != nil {
				return err
			}
			continue
		}
		fv := sv.values[i]
		if err := m.NextValue(func(d Deserializer) error { return decodeInto(d, fv) }); err != nil {
			return err
		}
	}
	return nil
}

// enumVisitor forwards a decoded tagged union to a user-supplied
// [EnumDecoder].
type enumVisitor struct{ ed EnumDecoder }

func (enumVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (enumVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (enumVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (enumVisitor) VisitNone() error            { return NewUnsupportedType() }
func (enumVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (enumVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (enumVisitor) VisitSeq(SeqAccess) error    { return NewUnsupportedType() }
func (enumVisitor) VisitMap(MapAccess) error    { return NewUnsupportedType() }

func (ev enumVisitor) VisitEnum(access EnumAccess) error {
	return ev.ed.DecodeVariant(access.VariantName(), access)
}
