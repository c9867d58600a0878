// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binary implements the tagged, length-prefixed binary zlisp wire
// format: a 32-bit little-endian discriminator followed by a payload, with
// lists nesting recursively. This package is the syntactic/physical layer;
// [Marshal] and [Unmarshal] drive the format-agnostic binding protocol of
// package zlisp (Serializer/Deserializer) against it, the way
// codello.dev/asn1/ber drives struct encoding atop codello.dev/asn1/tlv's
// tag-length-value framing.
//
// Every top-level payload begins with a mandatory outer LIST token whose
// stored count field is 2 — "one element follows". This wrapper is the
// single most important wire-compatibility requirement of the format and is
// written and required unconditionally by [Marshal] and [Unmarshal].
package binary

import "github.com/terranmechworks/zlisp"

//go:generate stringer -type=Tag -output=tag_string.go

// Tag is the 32-bit little-endian discriminator that precedes every value
// on the wire.
type Tag int32

const (
	TagInt    Tag = 1
	TagFloat  Tag = 2
	TagString Tag = 3
	TagList   Tag = 4
)

// tokenKind maps a wire Tag to the error model's TokenKind. For an
// unrecognized tag it returns the zero TokenKind, which carries no meaning
// there, and ok=false; callers must check ok.
func (t Tag) tokenKind() (zlisp.TokenKind, bool) {
	switch t {
	case TagInt:
		return zlisp.TokenInt, true
	case TagFloat:
		return zlisp.TokenFloat, true
	case TagString:
		return zlisp.TokenString, true
	case TagList:
		return zlisp.TokenList, true
	default:
		return 0, false
	}
}
