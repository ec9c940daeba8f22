// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries what was attempted, which file was involved, and how
// to fix it. Issue is a catalog of Markdown guidance for the failure classes
// the codebit CLI reports, rendered for the terminal with Glamour.
package issue
