// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"strconv"
	"strings"

	"github.com/terranmechworks/zlisp"
)

// sink is the low-level token stream a text encoder writes to. Both writer
// strategies implement it; text/codec.go's encoder is written once against
// this interface and is oblivious to which strategy backs it.
type sink interface {
	WriteI32(v int32) *zlisp.Error
	WriteF32(v float32) *zlisp.Error
	WriteStr(v string) *zlisp.Error
	BeginList() *zlisp.Error
	EndList() *zlisp.Error
}

func formatI32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatF32 always renders in fixed-point notation: the restricted float
// grammar §4.6 forbids exponent forms, so 'g' formatting (which switches to
// scientific notation for large/small magnitudes) would produce output the
// reader cannot parse back.
func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// formatStr validates and renders a string, wrapping it in quotes
// whenever [zlisp.NeedsQuoting] says the reader could otherwise
// misinterpret it. The string alphabet forbids embedded `"` bytes, so
// wrapping never requires escaping.
func formatStr(v string) (string, *zlisp.Error) {
	if err := zlisp.ValidateOut(v); err != nil {
		return "", err
	}
	if zlisp.NeedsQuoting(v) {
		return `"` + v + `"`, nil
	}
	return v, nil
}

// CompactWriter streams tokens directly to a growing buffer as events
// arrive, with no intermediate representation. Consecutive scalars are
// joined by Config.Delimiter on one line; only a token that follows a
// closed nested list starts a new line, indented to the current depth.
type CompactWriter struct {
	cfg   Config
	buf   strings.Builder
	depth int
	last  compactLastKind
}

// compactLastKind records what the previously emitted token was, the
// state CompactWriter.emit uses to choose a separator for the next one:
// a scalar run stays on one line (delimiter-joined), while a token
// following a just-closed nested list starts fresh on its own indented
// line. The very first token, and the first child right after a `(`,
// need no separator at all.
type compactLastKind uint8

const (
	compactNone compactLastKind = iota
	compactOpen
	compactScalar
	compactClose
)

// NewCompactWriter returns a CompactWriter using cfg.
func NewCompactWriter(cfg Config) *CompactWriter {
	return &CompactWriter{cfg: cfg}
}

// Bytes returns the rendered document so far.
func (w *CompactWriter) Bytes() []byte { return []byte(w.buf.String()) }

func (w *CompactWriter) emit(text string, kind compactLastKind) {
	switch w.last {
	case compactNone, compactOpen:
		// direct attach: nothing precedes, or this is a list's first child.
	case compactScalar:
		w.buf.WriteString(w.cfg.Delimiter)
	case compactClose:
		w.buf.WriteString(w.cfg.Newline)
		w.buf.WriteString(strings.Repeat(w.cfg.Indent, w.depth))
	}
	w.buf.WriteString(text)
	w.last = kind
}

func (w *CompactWriter) WriteI32(v int32) *zlisp.Error {
	w.emit(formatI32(v), compactScalar)
	return nil
}

func (w *CompactWriter) WriteF32(v float32) *zlisp.Error {
	w.emit(formatF32(v), compactScalar)
	return nil
}

func (w *CompactWriter) WriteStr(v string) *zlisp.Error {
	text, err := formatStr(v)
	if err != nil {
		return err
	}
	w.emit(text, compactScalar)
	return nil
}

func (w *CompactWriter) BeginList() *zlisp.Error {
	w.emit("(", compactOpen)
	w.depth++
	return nil
}

// EndList always attaches its `)` directly to whatever came before, with
// no separator: a closing paren never starts a new line itself, only
// what follows it does.
func (w *CompactWriter) EndList() *zlisp.Error {
	w.depth--
	w.buf.WriteString(")")
	w.last = compactClose
	return nil
}

// node is the intermediate tree PrettyWriter buffers a document into
// before rendering. A leaf carries its already-formatted text; a list
// carries its children plus a compactness flag computed bottom-up as the
// list closes.
type node struct {
	isList   bool
	text     string
	children []node
	compact  bool
}

func newLeaf(text string) node {
	return node{text: text, compact: true}
}

// compactThreshold is the flat child count below which a list renders on
// one line, per spec.md §4.8.
const compactThreshold = 7

func newListNode(children []node) node {
	compact := len(children) < compactThreshold
	if compact {
		for _, c := range children {
			if !c.compact {
				compact = false
				break
			}
		}
	}
	return node{isList: true, children: children, compact: compact}
}

func renderNode(n node, depth int, cfg Config, buf *strings.Builder) {
	if !n.isList {
		buf.WriteString(n.text)
		return
	}
	buf.WriteString("(")
	if n.compact {
		for i, c := range n.children {
			if i > 0 {
				buf.WriteString(cfg.Delimiter)
			}
			renderNode(c, depth, cfg, buf)
		}
		buf.WriteString(")")
		return
	}
	for _, c := range n.children {
		buf.WriteString(cfg.Newline)
		buf.WriteString(strings.Repeat(cfg.Indent, depth+1))
		renderNode(c, depth+1, cfg, buf)
	}
	buf.WriteString(cfg.Newline)
	buf.WriteString(strings.Repeat(cfg.Indent, depth))
	buf.WriteString(")")
}

// frame accumulates the children of one still-open list while the
// PrettyWriter's caller is inside it.
type frame struct {
	children []node
}

// PrettyWriter buffers the entire document into a [node] tree, then
// renders it in one pass so that a list's compactness can be decided from
// its fully-built children (spec.md §4.8).
type PrettyWriter struct {
	cfg   Config
	stack []*frame
	root  *node
}

// NewPrettyWriter returns a PrettyWriter using cfg.
func NewPrettyWriter(cfg Config) *PrettyWriter {
	return &PrettyWriter{cfg: cfg}
}

// Bytes renders the buffered document. It must be called only after the
// single top-level value has been fully written.
func (w *PrettyWriter) Bytes() []byte {
	if w.root == nil {
		return nil
	}
	var buf strings.Builder
	renderNode(*w.root, 0, w.cfg, &buf)
	return []byte(buf.String())
}

func (w *PrettyWriter) append(n node) {
	if len(w.stack) == 0 {
		w.root = &n
		return
	}
	top := w.stack[len(w.stack)-1]
	top.children = append(top.children, n)
}

func (w *PrettyWriter) WriteI32(v int32) *zlisp.Error {
	w.append(newLeaf(formatI32(v)))
	return nil
}

func (w *PrettyWriter) WriteF32(v float32) *zlisp.Error {
	w.append(newLeaf(formatF32(v)))
	return nil
}

func (w *PrettyWriter) WriteStr(v string) *zlisp.Error {
	text, err := formatStr(v)
	if err != nil {
		return err
	}
	w.append(newLeaf(text))
	return nil
}

func (w *PrettyWriter) BeginList() *zlisp.Error {
	w.stack = append(w.stack, &frame{})
	return nil
}

func (w *PrettyWriter) EndList() *zlisp.Error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.append(newListNode(top.children))
	return nil
}
