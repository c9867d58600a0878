// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zlisp

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the zlisp model version implemented by this module, in
// semver form. Neither wire format carries a version field on the wire
// (spec.md has no version negotiation), so Version exists purely for
// producers/consumers that exchange it out-of-band (a transport header, a
// handshake payload) and want to diagnose skew before trusting a stream.
const Version = "v1.0.0"

// MinSupportedVersion is the oldest producer Version this module's readers
// still expect to parse correctly. It is a diagnostic threshold, not an
// enforced floor: a Reader.ReportedVersion call against an older version
// returns a warning string for the caller to log; it never fails decoding
// on its own.
const MinSupportedVersion = "v1.0.0"

// VersionWarning reports a human-readable warning if producerVersion (a
// semver string reported out-of-band by whatever produced a stream) is
// older than MinSupportedVersion, or "" if producerVersion is unrecognized
// or current enough. Both binary.Reader and text.Reader expose this under
// their own ReportedVersion method; it never affects decoding.
func VersionWarning(producerVersion string) string {
	if !semver.IsValid(producerVersion) {
		return ""
	}
	if semver.Compare(producerVersion, MinSupportedVersion) < 0 {
		return fmt.Sprintf("zlisp: producer version %s predates minimum supported version %s", producerVersion, MinSupportedVersion)
	}
	return ""
}
