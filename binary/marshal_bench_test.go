// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

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

func BenchmarkUnmarshalSlice(b *testing.B) {
	run := func(k int) func(*testing.B) {
		return func(b *testing.B) {
			in := make([]int32, k)
			for i := range in {
				in[i] = int32(i)
			}
			data, err := Marshal(in)
			if err != nil {
				b.Fatalf("Marshal: %v", err)
			}
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				var out []int32
				if err := Unmarshal(data, &out); err != nil {
					b.Fatalf("Unmarshal: %v", err)
				}
			}
		}
	}

	b.Run("1", run(1))
	b.Run("10", run(10))
	b.Run("100", run(100))
}
