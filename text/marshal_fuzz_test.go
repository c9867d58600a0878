// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "testing"

// FuzzUnmarshalValue exercises UnmarshalValue (the generic Value carrier)
// against arbitrary text. Grounded on
// original_source/fuzz/fuzz_targets/bin_from_slice.rs's intent (decode
// arbitrary input into the generic value type, require no panic), adapted
// here to the text format's tokenizer/reader path instead of the binary
// one.
func FuzzUnmarshalValue(f *testing.F) {
	f.Add([]byte("(a\t-1\tb\t-2)"))
	f.Add([]byte(`"42"`))
	f.Add([]byte(""))
	f.Add([]byte(`"unterminated`))
	f.Add([]byte("("))

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = UnmarshalValue(data)
	})
}

// FuzzUnmarshalStruct exercises the reflection-driven decode path, which
// takes a different route through the tokenizer/reader (sized vs. unsized
// iteration, enum dispatch) than the generic Value decode above.
func FuzzUnmarshalStruct(f *testing.F) {
	seed, err := Marshal(struct {
		A int32  `zlisp:"a"`
		B string `zlisp:"b"`
	}{A: 1, B: "x"})
	if err != nil {
		f.Fatalf("Marshal: %v", err)
	}
	f.Add(seed)

	f.Fuzz(func(t *testing.T, data []byte) {
		var out struct {
			A int32  `zlisp:"a"`
			B string `zlisp:"b"`
		}
		_ = Unmarshal(data, &out)
	})
}
