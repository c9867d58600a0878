// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "github.com/terranmechworks/zlisp"

// Marshal encodes v as a single top-level text value using the compact
// streaming writer and [DefaultConfig]. Unlike the binary format, there is
// no outer wrapper: the value occupies the whole document. The document
// is terminated with cfg.Newline.
func Marshal(v any) ([]byte, error) {
	return MarshalConfig(v, DefaultConfig())
}

// MarshalConfig is Marshal with an explicit [Config].
func MarshalConfig(v any, cfg Config) ([]byte, error) {
	w := NewCompactWriter(cfg)
	if err := zlisp.Marshal(&encoder{w}, v); err != nil {
		return nil, err
	}
	return append(w.Bytes(), []byte(cfg.Newline)...), nil
}

// MarshalPretty encodes v using the buffered tree writer, which expands
// any collection past the compactness threshold onto its own indented
// lines (spec.md §4.8).
func MarshalPretty(v any) ([]byte, error) {
	return MarshalPrettyConfig(v, DefaultConfig())
}

// MarshalPrettyConfig is MarshalPretty with an explicit [Config].
func MarshalPrettyConfig(v any, cfg Config) ([]byte, error) {
	w := NewPrettyWriter(cfg)
	if err := zlisp.Marshal(&encoder{w}, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes a single top-level text value from data into v.
func Unmarshal(data []byte, v any) error {
	r := NewReader(data)
	if err := zlisp.Unmarshal(&decoder{r}, v); err != nil {
		return err
	}
	return errOf(r.Finish())
}

// MarshalValue encodes a [zlisp.Value] directly, bypassing reflection.
func MarshalValue(v zlisp.Value) ([]byte, error) {
	cfg := DefaultConfig()
	w := NewCompactWriter(cfg)
	if err := v.Encode(&encoder{w}); err != nil {
		return nil, err
	}
	return append(w.Bytes(), []byte(cfg.Newline)...), nil
}

// UnmarshalValue decodes a single top-level text value into a generic
// [zlisp.Value].
func UnmarshalValue(data []byte) (zlisp.Value, error) {
	r := NewReader(data)
	v, err := zlisp.DecodeValue(&decoder{r})
	if err != nil {
		return zlisp.Value{}, err
	}
	return v, errOf(r.Finish())
}
