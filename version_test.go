// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import "testing"

func TestVersionWarning(t *testing.T) {
	if w := VersionWarning("not-a-version"); w != "" {
		t.Errorf("VersionWarning(garbage) = %q, want \"\"", w)
	}
	if w := VersionWarning("v0.9.0"); w == "" {
		t.Errorf("VersionWarning(v0.9.0) = %q, want a warning", w)
	}
	if w := VersionWarning(Version); w != "" {
		t.Errorf("VersionWarning(current) = %q, want \"\"", w)
	}
	if w := VersionWarning("v2.0.0"); w != "" {
		t.Errorf("VersionWarning(newer) = %q, want \"\"", w)
	}
}
