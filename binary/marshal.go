// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import "github.com/terranmechworks/zlisp"

// Marshal encodes v to the binary wire format, including the mandatory
// outer LIST(count=2) wrapper (spec.md §4.4).
func Marshal(v any) ([]byte, error) {
	w := NewWriter()
	if err := w.WriteListHeader(1); err != nil {
		return nil, err
	}
	if err := zlisp.Marshal(&encoder{w}, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes data, which must begin with the mandatory outer
// LIST(count=2) wrapper, into *v. It reports [zlisp.ErrorKind]
// TrailingData if data holds anything past the decoded value.
func Unmarshal(data []byte, v any) error {
	r := NewReader(data)
	n, fieldOffset, err := r.ReadListHeader()
	if err != nil {
		return err
	}
	if n != 1 {
		return zlisp.NewInvalidListLength().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	if err := zlisp.Unmarshal(&decoder{r}, v); err != nil {
		return err
	}
	return errOf(r.Finish())
}

// MarshalValue encodes a generic [zlisp.Value], bypassing reflection. It is
// the entry point a transcoder or fuzz harness uses when it already has an
// untyped tree rather than a Go struct.
func MarshalValue(v zlisp.Value) ([]byte, error) {
	w := NewWriter()
	if err := w.WriteListHeader(1); err != nil {
		return nil, err
	}
	if err := v.Encode(&encoder{w}); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalValue decodes data into a generic [zlisp.Value].
func UnmarshalValue(data []byte) (zlisp.Value, error) {
	r := NewReader(data)
	n, fieldOffset, err := r.ReadListHeader()
	if err != nil {
		return zlisp.Value{}, err
	}
	if n != 1 {
		return zlisp.Value{}, zlisp.NewInvalidListLength().WithLocation(zlisp.ByteOffset(fieldOffset))
	}
	val, derr := zlisp.DecodeValue(&decoder{r})
	if derr != nil {
		return zlisp.Value{}, derr
	}
	if err := r.Finish(); err != nil {
		return zlisp.Value{}, err
	}
	return val, nil
}
