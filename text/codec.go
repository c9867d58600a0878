// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "github.com/terranmechworks/zlisp"

// errOf converts the package's pointer-typed *zlisp.Error return style to
// a plain error, so a nil *zlisp.Error becomes a true nil interface
// instead of the classic typed-nil trap.
func errOf(e *zlisp.Error) error {
	if e == nil {
		return nil
	}
	return e
}

// attachLoc attaches loc to err if it is an unlocated *zlisp.Error,
// implementing spec.md §7's rule that the codec attaches a location to
// any unlocated error crossing its boundary (e.g. a Custom error raised
// by a user EnumDecoder). First-attach-wins: an already-located error, or
// a non-*zlisp.Error, passes through unchanged.
func attachLoc(err error, loc zlisp.Location) error {
	if ze, ok := err.(*zlisp.Error); ok {
		ze.WithLocation(loc)
	}
	return err
}

// encoder implements [zlisp.Serializer] atop a [sink]. Unlike the binary
// codec, no length is ever written to the wire: every collection shape is
// delimited structurally by BeginList/EndList, and the binding protocol's
// length parameters exist only to satisfy the shared interface (and, for
// BeginSeq/BeginMap, to reject the genuinely-unknown-length case the
// format cannot represent).
type encoder struct {
	w sink
}

func (e *encoder) IsHumanReadable() bool { return true }

func (e *encoder) EmitI32(v int32) error { return errOf(e.w.WriteI32(v)) }
func (e *encoder) EmitF32(v float32) error { return errOf(e.w.WriteF32(v)) }
func (e *encoder) EmitStr(v string) error { return errOf(e.w.WriteStr(v)) }

func (e *encoder) EmitNone() error {
	if err := e.w.BeginList(); err != nil {
		return err
	}
	return errOf(e.w.EndList())
}

func (e *encoder) EmitSome(inner zlisp.EncodeFunc) error {
	if err := e.w.BeginList(); err != nil {
		return err
	}
	if err := inner(e); err != nil {
		return err
	}
	return errOf(e.w.EndList())
}

func (e *encoder) EmitUnit() error { return e.EmitNone() }

func (e *encoder) EmitUnitStruct(name string) error { return e.EmitUnit() }

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
	return e.EmitSome(inner)
}

func (e *encoder) BeginSeq(length *int) (zlisp.SeqEncoder, error) {
	if length == nil {
		return nil, zlisp.NewSequenceMustHaveKnownLength()
	}
	if err := e.w.BeginList(); err != nil {
		return nil, err
	}
	return seqEncoder{e}, nil
}

func (e *encoder) BeginTuple(length int) (zlisp.SeqEncoder, error) {
	if err := e.w.BeginList(); err != nil {
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
	if err := e.w.BeginList(); err != nil {
		return nil, err
	}
	return mapEncoder{e}, nil
}

func (e *encoder) BeginStruct(name string, length int) (zlisp.StructEncoder, error) {
	if err := e.w.BeginList(); err != nil {
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

// seqEncoder drives every ordered-container scope. End closes the
// structural `(`/`)` pair BeginList opened.
type seqEncoder struct{ e *encoder }

func (s seqEncoder) Element(v zlisp.EncodeFunc) error { return v(s.e) }
func (s seqEncoder) End() error                       { return errOf(s.e.w.EndList()) }

// mapEncoder drives begin_map: key and value are each written as an
// ordinary list element, matching the flat-list encoding shared with the
// binary codec.
type mapEncoder struct{ e *encoder }

func (m mapEncoder) Key(k zlisp.EncodeFunc) error   { return k(m.e) }
func (m mapEncoder) Value(v zlisp.EncodeFunc) error { return v(m.e) }
func (m mapEncoder) End() error                     { return errOf(m.e.w.EndList()) }

// structEncoder drives begin_struct/begin_struct_variant: the field name
// is written as a string key, immediately followed by the field value.
type structEncoder struct{ e *encoder }

func (s structEncoder) Field(name string, v zlisp.EncodeFunc) error {
	if err := s.e.EmitStr(name); err != nil {
		return err
	}
	return v(s.e)
}

func (s structEncoder) End() error { return errOf(s.e.w.EndList()) }

// decoder implements [zlisp.Deserializer] atop a [Reader].
type decoder struct {
	r *Reader
}

func (d *decoder) IsHumanReadable() bool { return true }

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
		if err := v.VisitSeq(&seqAccess{d: d}); err != nil {
			return err
		}
		return errOf(d.r.ReadListEnd())
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
	v, err := d.r.ReadString()
	return v, errOf(err)
}

func (d *decoder) DecodeOption(v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	isEnd, perr := d.r.PeekIsListEnd()
	if perr != nil {
		return errOf(perr)
	}
	if isEnd {
		if err := errOf(d.r.ReadListEnd()); err != nil {
			return err
		}
		return attachLoc(v.VisitNone(), loc)
	}
	if err := attachLoc(v.VisitSome(d), loc); err != nil {
		return err
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeUnit() error {
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	isEnd, perr := d.r.PeekIsListEnd()
	if perr != nil {
		return errOf(perr)
	}
	if !isEnd {
		return zlisp.NewExpectedListOfLength(0, 0, 1).WithLocation(zlisp.LineColumn(d.r.Line(), d.r.Col()))
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeTuple(length int, v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	if err := attachLoc(v.VisitSeq(&seqAccess{d: d, remaining: length, sized: true}), loc); err != nil {
		return err
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeSeq(v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	if err := attachLoc(v.VisitSeq(&seqAccess{d: d}), loc); err != nil {
		return err
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeMap(v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	if err := attachLoc(v.VisitMap(&mapAccess{d: d}), loc); err != nil {
		return err
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeStruct(name string, fieldNames []string, v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	if err := errOf(d.r.ReadListStart()); err != nil {
		return err
	}
	if err := attachLoc(v.VisitMap(&mapAccess{d: d}), loc); err != nil {
		return err
	}
	return errOf(d.r.ReadListEnd())
}

func (d *decoder) DecodeEnum(name string, variants []string, v zlisp.Visitor) error {
	loc := zlisp.LineColumn(d.r.Line(), d.r.Col())
	variant, err := d.r.ReadString()
	if err != nil {
		return err
	}
	return attachLoc(v.VisitEnum(enumAccess{d, variant}), loc)
}

// seqAccess drives VisitSeq. A tuple of known arity counts down
// (sized=true); a variable-length seq instead peeks for the closing `)`
// before every element, since the text format carries no length prefix.
type seqAccess struct {
	d         *decoder
	remaining int
	sized     bool
}

func (s *seqAccess) Len() (int, bool) {
	if s.sized {
		return s.remaining, true
	}
	return 0, false
}

func (s *seqAccess) NextElement(fn zlisp.DecodeFunc) (bool, error) {
	if s.sized {
		if s.remaining <= 0 {
			return false, nil
		}
		s.remaining--
		if err := fn(s.d); err != nil {
			return false, err
		}
		return true, nil
	}
	isEnd, perr := s.d.r.PeekIsListEnd()
	if perr != nil {
		return false, errOf(perr)
	}
	if isEnd {
		return false, nil
	}
	if err := fn(s.d); err != nil {
		return false, err
	}
	return true, nil
}

// mapAccess drives VisitMap over a parenthesized key/value run, peeking
// for `)` between pairs and rejecting a key with no matching value as
// ExpectedKeyValuePair.
type mapAccess struct {
	d *decoder
}

func (m *mapAccess) Len() (int, bool) { return 0, false }

func (m *mapAccess) NextKey(fn zlisp.DecodeFunc) (bool, error) {
	isEnd, perr := m.d.r.PeekIsListEnd()
	if perr != nil {
		return false, errOf(perr)
	}
	if isEnd {
		return false, nil
	}
	if err := fn(m.d); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mapAccess) NextValue(fn zlisp.DecodeFunc) error {
	isEnd, perr := m.d.r.PeekIsListEnd()
	if perr != nil {
		return errOf(perr)
	}
	if isEnd {
		return zlisp.NewExpectedKeyValuePair().WithLocation(zlisp.LineColumn(m.d.r.Line(), m.d.r.Col()))
	}
	return fn(m.d)
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
	if err := errOf(e.d.r.ReadListStart()); err != nil {
		return err
	}
	if err := fn(e.d); err != nil {
		return err
	}
	return errOf(e.d.r.ReadListEnd())
}

func (e enumAccess) Tuple(length int, v zlisp.Visitor) error {
	return e.d.DecodeTuple(length, v)
}

func (e enumAccess) Struct(fields []string, v zlisp.Visitor) error {
	return e.d.DecodeStruct(e.name, fields, v)
}
