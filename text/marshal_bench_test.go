// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "testing"

type benchStruct struct {
	A int32  `zlisp:"a"`
	B int32  `zlisp:"b"`
	C string `zlisp:"c"`
}

func BenchmarkMarshalStruct(b *testing.B) {
	v := benchStruct{A: -1, B: 2, C: "hello"}
	for b.Loop() {
		if _, err := Marshal(v); err != nil {
			b.Fatalf("Marshal: %v", err)
		}
	}
}

func BenchmarkUnmarshalStruct(b *testing.B) {
	data, err := Marshal(benchStruct{A: -1, B: 2, C: "hello"})
	if err != nil {
		b.Fatalf("Marshal: %v", err)
	}
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		var out benchStruct
		if err := Unmarshal(data, &out); err != nil {
			b.Fatalf("Unmarshal: %v", err)
		}
	}
}

func BenchmarkMarshalPrettySlice(b *testing.B) {
	run := func(k int) func(*testing.B) {
		return func(b *testing.B) {
			in := make([]int32, k)
			for i := range in {
				in[i] = int32(i)
			}
			for b.Loop() {
				if _, err := MarshalPretty(in); err != nil {
					b.Fatalf("MarshalPretty: %v", err)
				}
			}
		}
	}

	b.Run("3", run(3))
	b.Run("12", run(12))
	b.Run("100", run(100))
}
