// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

// This file defines the shape-directed binding protocol of spec.md §4.9: a
// pair of visitor interfaces that the binary and text codecs both implement
// (Serializer/Deserializer) and that generic, reflection-driven code in
// marshal.go/unmarshal.go drives against arbitrary Go values. Neither codec
// package imports the other; both import only this package.

// EncodeFunc encodes a single value against s. A bound method value such as
// Value.Encode satisfies this type directly; reflection-driven code builds
// one with a closure over a reflect.Value.
type EncodeFunc func(s Serializer) error

// DecodeFunc decodes a single value from d, writing the result somewhere the
// closure captures.
type DecodeFunc func(d Deserializer) error

// VariantKind classifies the payload shape of a tagged-union variant.
type VariantKind uint8

const (
	VariantUnit VariantKind = iota
	VariantNewtype
	VariantTuple
	VariantStruct
)

// Enum is implemented by Go types that model a zlisp tagged union (the
// rough equivalent of a Rust enum). Go has no native sum type, so a type
// opts into variant encoding by implementing this interface instead of
// being walked structurally the way a struct is.
type Enum interface {
	// EnumName returns the family name, used only for diagnostics.
	EnumName() string
	// EncodeVariant returns the wire name of the currently active variant,
	// its kind, and (for any kind but VariantUnit) a function that encodes
	// its payload. payload is ignored when kind is VariantUnit.
	//
	// For VariantNewtype, payload encodes the single wrapped value and the
	// generic driver supplies the variant-name/length-1-list framing via
	// [Serializer.EmitNewtypeVariant]. For VariantTuple and VariantStruct,
	// payload is invoked directly with the Serializer and must drive the
	// whole payload itself (typically via [Serializer.BeginTupleVariant] or
	// [Serializer.BeginStructVariant] through to End), since its element
	// count is known only to the Enum implementation.
	EncodeVariant() (name string, kind VariantKind, payload EncodeFunc)
}

// EnumDecoder is implemented by Go types that decode themselves from a
// zlisp tagged union.
type EnumDecoder interface {
	// EnumName returns the family name, used only for diagnostics.
	EnumName() string
	// Variants lists the recognized variant names. It is passed on to
	// [Deserializer.DecodeEnum], which neither codec consults; decode
	// itself does not require an exhaustive list.
	Variants() []string
	// DecodeVariant is invoked with the decoded variant name and an
	// EnumAccess positioned to read its payload. Implementations that do
	// not recognize name should return NewCustom("unknown variant " + name).
	DecodeVariant(name string, access EnumAccess) error
}

// Serializer is the encode side of the binding protocol (spec.md §4.9). Both
// the binary and text codecs implement it; [Marshal] drives it against any
// supported Go value via reflection.
type Serializer interface {
	EmitI32(v int32) error
	EmitF32(v float32) error
	EmitStr(v string) error

	EmitNone() error
	EmitSome(inner EncodeFunc) error

	EmitUnit() error
	EmitUnitStruct(name string) error
	EmitUnitVariant(enumName, variant string) error

	EmitNewtypeStruct(name string, inner EncodeFunc) error
	EmitNewtypeVariant(enumName, variant string, inner EncodeFunc) error

	// BeginSeq starts a sequence of unknown-at-the-call-site but
	// resolvable length; length must be non-nil (both wire formats require
	// a known length up front — see NewSequenceMustHaveKnownLength).
	BeginSeq(length *int) (SeqEncoder, error)
	BeginTuple(length int) (SeqEncoder, error)
	BeginTupleStruct(name string, length int) (SeqEncoder, error)
	BeginTupleVariant(enumName, variant string, length int) (SeqEncoder, error)

	BeginMap(length *int) (MapEncoder, error)
	BeginStruct(name string, length int) (StructEncoder, error)
	BeginStructVariant(enumName, variant string, length int) (StructEncoder, error)

	// IsHumanReadable reports whether this serializer targets a
	// human-readable format (text: true) or not (binary: false), letting
	// caller types choose alternate encodings per format.
	IsHumanReadable() bool
}

// SeqEncoder is the scope handle returned by BeginSeq/BeginTuple and
// friends: each element is emitted individually, then End terminates the
// scope.
type SeqEncoder interface {
	Element(v EncodeFunc) error
	End() error
}

// MapEncoder is the scope handle returned by BeginMap: each entry is
// emitted as a Key call immediately followed by a Value call.
type MapEncoder interface {
	Key(k EncodeFunc) error
	Value(v EncodeFunc) error
	End() error
}

// StructEncoder is the scope handle returned by BeginStruct/
// BeginStructVariant: each field is emitted by name.
type StructEncoder interface {
	Field(name string, v EncodeFunc) error
	End() error
}

// Deserializer is the decode side of the binding protocol. The codec drives
// calls against a caller-supplied [Visitor]; [Unmarshal] supplies a visitor
// built by reflection over the destination Go value.
type Deserializer interface {
	DecodeAny(v Visitor) error

	DecodeI32() (int32, error)
	DecodeF32() (float32, error)
	DecodeStr() (string, error)

	DecodeOption(v Visitor) error
	DecodeUnit() error

	DecodeTuple(length int, v Visitor) error
	DecodeSeq(v Visitor) error
	DecodeMap(v Visitor) error
	DecodeStruct(name string, fields []string, v Visitor) error
	DecodeEnum(name string, variants []string, v Visitor) error

	IsHumanReadable() bool
}

// Visitor receives exactly one callback from a Deserializer method,
// corresponding to whichever shape was actually present on the wire. Types
// that only care about some shapes should embed [BaseVisitor] to satisfy the
// rest with an UnsupportedType error.
type Visitor interface {
	VisitI32(v int32) error
	VisitF32(v float32) error
	VisitStr(v string) error
	VisitNone() error
	VisitSome(d Deserializer) error
	VisitUnit() error
	VisitSeq(seq SeqAccess) error
	VisitMap(m MapAccess) error
	VisitEnum(e EnumAccess) error
}

// BaseVisitor implements [Visitor] with every method returning
// [NewUnsupportedType]. Embed it in a partial visitor to avoid spelling out
// shapes that cannot occur for a given call.
type BaseVisitor struct{}

func (BaseVisitor) VisitI32(int32) error        { return NewUnsupportedType() }
func (BaseVisitor) VisitF32(float32) error      { return NewUnsupportedType() }
func (BaseVisitor) VisitStr(string) error       { return NewUnsupportedType() }
func (BaseVisitor) VisitNone() error            { return NewUnsupportedType() }
func (BaseVisitor) VisitSome(Deserializer) error { return NewUnsupportedType() }
func (BaseVisitor) VisitUnit() error            { return NewUnsupportedType() }
func (BaseVisitor) VisitSeq(SeqAccess) error    { return NewUnsupportedType() }
func (BaseVisitor) VisitMap(MapAccess) error    { return NewUnsupportedType() }
func (BaseVisitor) VisitEnum(EnumAccess) error  { return NewUnsupportedType() }

// SeqAccess is handed to [Visitor.VisitSeq]. Len reports the known element
// count when available: the binary codec always knows it (every binary list
// is length-prefixed), while the text codec knows it only for fixed-arity
// tuples. NextElement decodes the next element via fn and reports whether
// one was present.
type SeqAccess interface {
	Len() (int, bool)
	NextElement(fn DecodeFunc) (bool, error)
}

// MapAccess is handed to [Visitor.VisitMap]. Entries must be consumed as
// key/value pairs: call NextKey, and if it reports true, NextValue must be
// called before the next NextKey.
type MapAccess interface {
	Len() (int, bool)
	NextKey(fn DecodeFunc) (bool, error)
	NextValue(fn DecodeFunc) error
}

// EnumAccess is handed to [EnumDecoder.DecodeVariant] (via the codec's
// DecodeEnum) positioned to read the active variant's payload.
type EnumAccess interface {
	// VariantName returns the variant discriminator the codec already read
	// off the wire before invoking the visitor.
	VariantName() string
	// Unit consumes a unit-variant payload (i.e. confirms none is present).
	Unit() error
	// Newtype decodes a single-element newtype-variant payload via fn.
	Newtype(fn DecodeFunc) error
	// Tuple decodes a fixed-length tuple-variant payload.
	Tuple(length int, v Visitor) error
	// Struct decodes a keyed struct-variant payload.
	Struct(fields []string, v Visitor) error
}
