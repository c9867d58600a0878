// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import "github.com/terranmechworks/zlisp"

// errOf converts the package's pointer-typed *zlisp.Error return style to
// a plain error, so a nil *zlisp.Error becomes a true nil interface instead
// of the classic typed-nil trap.
func errOf(e *zlisp.Error) error {
	if e == nil {
		return nil
	}
	return e
}

// encoder implements [zlisp.Serializer] atop a [Writer]. Every shape the
// binding protocol can describe reduces to the four physical tokens INT,
// FLOAT, STRING, and LIST; the encoder's job is picking the right sequence
// of those per spec.md §4.4/§4.9.
type encoder struct {
	w *Writer
}

func (e *encoder) IsHumanReadable() bool { return false }

func (e *encoder) EmitI32(v int32) error { return errOf(e.w.WriteI32(v)) }
func (e *encoder) EmitF32(v float32) error { return errOf(e.w.WriteF32(v)) }
func (e *encoder) EmitStr(v string) error { return errOf(e.w.WriteStr(v)) }

func (e *encoder) EmitNone() error {
	return errOf(e.w.WriteListHeader(0))
}

func (e *encoder) EmitSome(inner zlisp.EncodeFunc) error {
	if err := e.w.WriteListHeader(1); err != nil {
		return err
	}
	return inner(e)
}

func (e *encoder) EmitUnit() error {
	return errOf(e.w.WriteListHeader(0))
}

func (e *encoder) EmitUnitStruct(name string) error {
	return e.EmitUnit()
}

func (e *encoder) EmitUnitVariant(enumName, variant string) error {
	return e.EmitStr(variant)
}

func (e *encoder) EmitNewtypeStruct(name string, inner zlisp.EncodeFunc) error {
	return inner(e)
}

func (e *encoder) EmitNewtypeVariant(enumName, variant string, inner zlisp.EncodeFunc) error {
	if err := e.EmitStr(variant); err != nil {
		return err
	}
	if err := e.w.WriteListHeader(1); err != nil {
		return err
	}
	return inner(e)
}

func (e *encoder) BeginSeq(length *int) (zlisp.SeqEncoder, error) {
	if length == nil {
		return nil, zlisp.NewSequenceMustHaveKnownLength()
	}
	if err := e.w.WriteListHeader(*length); err != nil {
		return nil, err
	}
	return seqEncoder{e}, nil
}

func (e *encoder) BeginTuple(length int) (zlisp.SeqEncoder, error) {
	if err := e.w.WriteListHeader(length); err != nil {
		return nil, err
	}
	return seqEncoder{e}, nil
}

func (e *encoder) BeginTupleStruct(name string, length int) (zlisp.SeqEncoder, error) {
	return e.BeginTuple(length)
}

func (e *encoder) BeginTupleVariant(enumName, variant string, length int) (zlisp.SeqEncoder, error) {
	if err := e.EmitStr(variant); err != nil {
		return nil, err
	}
	return e.BeginTuple(length)
}

func (e *encoder) BeginMap(length *int) (zlisp.MapEncoder, error) {
	if length == nil {
		return nil, zlisp.NewSequenceMustHaveKnownLength()
	}
	if err := e.w.WriteListHeader(*length * 2); err != nil {
		return nil, err
	}
	return mapEncoder{e}, nil
}

func (e *encoder) BeginStruct(name string, length int) (zlisp.StructEncoder, error) {
	if err := e.w.WriteListHeader(length * 2); err != nil {
		return nil, err
	}
	return structEncoder{e}, nil
}

func (e *encoder) BeginStructVariant(enumName, variant string, length int) (zlisp.StructEncoder, error) {
	if err := e.EmitStr(variant); err != nil {
		return nil, err
	}
	return e.BeginStruct(enumName, length)
}

// seqEncoder drives every ordered-container scope (seq, tuple, tuple
// struct, tuple variant): each is just a list of elements once the header
// is written.
type seqEncoder struct{ e *encoder }

func (s seqEncoder) Element(v zlisp.EncodeFunc) error { return v(s.e) }
func (s seqEncoder) End() error                       { return nil }

// mapEncoder drives begin_map: key and value are each written as an
// ordinary element of the flat 2n-length list.
type mapEncoder struct{ e *encoder }

func (m mapEncoder) Key(k zlisp.EncodeFunc) error   { return k(m.e) }
func (m mapEncoder) Value(v zlisp.EncodeFunc) error { return v(m.e) }
func (m mapEncoder) End() error                     { return nil }

// structEncoder drives begin_struct/begin_struct_variant: the field name
// is written as a string key, immediately followed by the field value,
// matching the map-as-flat-list encoding of spec.md §4.9.
type structEncoder struct{ e *encoder }

func (s structEncoder) Field(name string, v zlisp.EncodeFunc) error {
	if err := s.e.EmitStr(name); err != nil {
		return err
	}
	return v(s.e)
}

func (s structEncoder) End() error { return nil }

// decoder implements [zlisp.Deserializer] atop a [Reader].
type decoder struct {
	r *Reader
}

func (d *decoder) IsHumanReadable() bool { return false }

func (d *decoder) DecodeAny(v zlisp.Visitor) error {
	tok, err := d.r.ReadAny()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case zlisp.TokenInt:
		return v.VisitI32(tok.Int)
	case zlisp.TokenFloat:
		return v.VisitF32(tok.Flt)
	case zlisp.TokenString:
		return v.VisitStr(tok.Str)
	case zlisp.TokenList:
		return v.VisitSeq(&seqAccess{d, tok.Len})
	default:
		return zlisp.NewInvalidTokenType()
	}
}

func (d *decoder) DecodeI32() (int32, error) {
	v, err := d.r.ReadI32()
	return v, errOf(err)
}

func (d *decoder) DecodeF32() (float32, error) {
	v, err := d.r.ReadF32()
	return v, errOf(err)
}

func (d *decoder) DecodeStr() (string, error) {
	v, err := d.r.ReadStr()
	return v, errOf(err)
}

func (d *decoder) DecodeOption(v zlisp.Visitor) error {
	n, fieldOffset, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	switch n {
	case 0:
		return v.VisitNone()
	case 1:
		return v.VisitSome(d)
	default:
		return zlisp.NewExpectedListOfLength(0, 1, n).WithLocation(zlisp.ByteOffset(fieldOffset))
	}
}

func (d *decoder) DecodeUnit() error {
	n, fieldOffset, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	if n != 0 {
		return zlisp.NewExpectedListOfLength(0, 0, n).WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return nil
}

func (d *decoder) DecodeTuple(length int, v zlisp.Visitor) error {
	n, fieldOffset, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	if n != length {
		return zlisp.NewExpectedListOfLength(length, length, n).WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return v.VisitSeq(&seqAccess{d, n})
}

func (d *decoder) DecodeSeq(v zlisp.Visitor) error {
	n, _, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	return v.VisitSeq(&seqAccess{d, n})
}

func (d *decoder) DecodeMap(v zlisp.Visitor) error {
	n, fieldOffset, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	if n%2 != 0 {
		return zlisp.NewExpectedKeyValuePair().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return v.VisitMap(&mapAccess{d, n / 2})
}

func (d *decoder) DecodeStruct(name string, fieldNames []string, v zlisp.Visitor) error {
	n, fieldOffset, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	if n%2 != 0 {
		return zlisp.NewExpectedKeyValuePair().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return v.VisitMap(&mapAccess{d, n / 2})
}

func (d *decoder) DecodeEnum(name string, variants []string, v zlisp.Visitor) error {
	variant, err := d.r.ReadStr()
	if err != nil {
		return err
	}
	return v.VisitEnum(enumAccess{d, variant})
}

// seqAccess drives VisitSeq for ordered containers of a known length.
type seqAccess struct {
	d         *decoder
	remaining int
}

func (s *seqAccess) Len() (int, bool) { return s.remaining, true }

func (s *seqAccess) NextElement(fn zlisp.DecodeFunc) (bool, error) {
	if s.remaining <= 0 {
		return false, nil
	}
	s.remaining--
	if err := fn(s.d); err != nil {
		return false, err
	}
	return true, nil
}

// mapAccess drives VisitMap over a flat 2n-length list, n key/value pairs
// at a time.
type mapAccess struct {
	d     *decoder
	pairs int
}

func (m *mapAccess) Len() (int, bool) { return m.pairs, true }

func (m *mapAccess) NextKey(fn zlisp.DecodeFunc) (bool, error) {
	if m.pairs <= 0 {
		return false, nil
	}
	if err := fn(m.d); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mapAccess) NextValue(fn zlisp.DecodeFunc) error {
	err := fn(m.d)
	m.pairs--
	return err
}

// enumAccess drives an [zlisp.EnumDecoder]'s DecodeVariant callback over
// whatever payload shape it asks for.
type enumAccess struct {
	d    *decoder
	name string
}

func (e enumAccess) VariantName() string { return e.name }

func (e enumAccess) Unit() error { return nil }

func (e enumAccess) Newtype(fn zlisp.DecodeFunc) error {
	n, fieldOffset, err := e.d.r.ReadListHeader()
	if err != nil {
		return err
	}
	if n != 1 {
		return zlisp.NewExpectedListOfLength(1, 1, n).WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	return fn(e.d)
}

func (e enumAccess) Tuple(length int, v zlisp.Visitor) error {
	return e.d.DecodeTuple(length, v)
}

func (e enumAccess) Struct(fields []string, v zlisp.Visitor) error {
	return e.d.DecodeStruct(e.name, fields, v)
}
