// SPDX-License-Identifier: MPL-2.0

// Package semver parses, compares, and formats Semantic Versioning 2.0.0 values.
//
// Parsing is graded: TryParse reports whether the input was fully Valid, merely
// Tolerable (accepted with diagnostics, e.g. a missing patch number or a "v" prefix),
// or Invalid. ParseForSearch builds a ceiling version in which every unspecified
// trailing component is maximal, for "at most this version" directory lookups.
//
// Build metadata is carried and formatted but never takes part in ordering or equality.
package semver
