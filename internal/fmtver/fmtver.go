// Package fmtver tags the debug/introspection SRS summary with a semantic
// version, so a future on-disk debug dump can be read back by tooling that
// knows which fields to expect. It has no bearing on the bespoke,
// byte-pinned "unchecked" wire format used for the production SRS
// load/store path.
package fmtver

import "github.com/blang/semver/v4"

// DebugSummaryFormat is the version embedded in every SRS.DebugSummary
// output. Bump the minor version when adding a field, the major version
// when removing or renaming one.
var DebugSummaryFormat = semver.MustParse("1.0.0")
