// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"bytes"
	"testing"

	"github.com/terranmechworks/zlisp"
)

func TestMarshalUnmarshalInt(t *testing.T) {
	data, err := Marshal(int32(7))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{
		0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal: got % x, want % x", data, want)
	}
	var out int32
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != 7 {
		t.Errorf("out = %d, want 7", out)
	}
}

func TestUnmarshalRequiresOuterWrapper(t *testing.T) {
	// a bare INT token with no outer wrapper at all.
	buf := []byte{0x01, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00}
	var out int32
	err := Unmarshal(buf, &out)
	if err == nil {
		t.Fatal("expected error for missing outer wrapper")
	}
}

type point struct {
	X int32 `zlisp:"x"`
	Y int32 `zlisp:"y"`
}

func TestMarshalUnmarshalStruct(t *testing.T) {
	in := point{X: -1, Y: -2}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out point
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("out = %+v, want %+v", out, in)
	}
}

func TestMarshalUnmarshalOption(t *testing.T) {
	var in *int32
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal nil: %v", err)
	}
	var out *int32
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal nil: %v", err)
	}
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}

	v := int32(42)
	data, err = Marshal(&v)
	if err != nil {
		t.Fatalf("Marshal some: %v", err)
	}
	out = nil
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal some: %v", err)
	}
	if out == nil || *out != 42 {
		t.Errorf("out = %v, want 42", out)
	}
}

func TestMarshalUnmarshalSlice(t *testing.T) {
	in := []int32{1, 2, 3}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out []int32
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestMarshalUnmarshalMap(t *testing.T) {
	in := map[string]int32{"a": 1, "b": 2}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]int32
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for k, v := range in {
		if out[k] != v {
			t.Errorf("out[%q] = %d, want %d", k, out[k], v)
		}
	}
}

// shape is a tiny tagged union with one unit variant and one newtype
// variant, exercising [zlisp.Enum] / [zlisp.EnumDecoder].
type shape struct {
	isCircle bool
	radius   int32
}

func (s shape) EnumName() string { return "Shape" }

func (s shape) EncodeVariant() (string, zlisp.VariantKind, zlisp.EncodeFunc) {
	if !s.isCircle {
		return "Point", zlisp.VariantUnit, nil
	}
	radius := s.radius
	return "Circle", zlisp.VariantNewtype, func(ser zlisp.Serializer) error {
		return ser.EmitI32(radius)
	}
}

func (s *shape) Variants() []string { return []string{"Point", "Circle"} }

func (s *shape) DecodeVariant(name string, access zlisp.EnumAccess) error {
	switch name {
	case "Point":
		s.isCircle = false
		return access.Unit()
	case "Circle":
		s.isCircle = true
		return access.Newtype(func(d zlisp.Deserializer) error {
			r, err := d.DecodeI32()
			if err != nil {
				return err
			}
			s.radius = r
			return nil
		})
	default:
		return zlisp.NewCustom("unknown variant " + name)
	}
}

func TestMarshalUnmarshalEnumUnit(t *testing.T) {
	in := shape{isCircle: false}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out shape
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.isCircle {
		t.Errorf("out.isCircle = true, want false")
	}
}

func TestMarshalUnmarshalEnumNewtype(t *testing.T) {
	in := shape{isCircle: true, radius: 5}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out shape
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.isCircle || out.radius != 5 {
		t.Errorf("out = %+v, want isCircle=true radius=5", out)
	}
}

func TestMarshalUnmarshalValue(t *testing.T) {
	in := zlisp.List(zlisp.Int32(1), zlisp.String("hi"))
	data, err := MarshalValue(in)
	if err != nil {
		t.Fatalf("MarshalValue: %v", err)
	}
	out, err := UnmarshalValue(data)
	if err != nil {
		t.Fatalf("UnmarshalValue: %v", err)
	}
	if !in.Equal(out) {
		t.Errorf("out = %v, want %v", out, in)
	}
}
