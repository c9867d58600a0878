// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zlisp implements a small, lisp-like data model and the
// framework-agnostic binding layer shared by its two wire formats.
//
// zlisp values are one of four shapes: a 32-bit signed integer, an IEEE-754
// binary32 float, an ASCII string (at most 255 bytes), or an ordered list of
// at most 255 elements, each itself one of these four shapes. The subpackages
// [github.com/terranmechworks/zlisp/binary] and
// [github.com/terranmechworks/zlisp/text] encode and decode this model as a
// tagged, length-prefixed byte stream and as a parenthesized text
// representation respectively. Both codecs drive the same
// [Serializer]/[Deserializer] contract defined in this package, so a
// user-defined aggregate type written once against that contract round-trips
// through either wire format unchanged.
//
// # Defining aggregate types
//
// Plain Go structs, slices, maps, and pointers (used as options: a nil
// pointer encodes as "none") are supported directly via reflection. Tagged
// unions — the zlisp equivalent of a Rust enum — have no native Go
// expression, so they are modeled via the [Enum] and [EnumDecoder]
// interfaces: a type implements EnumDecoder's DecodeVariant to decode itself as the named
// variant of some family, the way [encoding.TextUnmarshaler] lets a type
// customize its own text decoding.
//
//	type Shape struct {
//		Name string
//		Legs int32 `zlisp:"legs,omitzero"`
//	}
//
// Struct fields are named by their Go field name unless a `zlisp:"name"`
// struct tag overrides it. A field tagged `omitzero` is skipped during
// encoding (and treated as its zero value if absent during decoding) the way
// `encoding/json`'s `omitempty` works, not the way ASN.1 OPTIONAL works.
package zlisp
