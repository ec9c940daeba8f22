// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for codebit.
//
// This package implements the Cobra command hierarchy for the codebit CLI:
// validating single CodeBit records, comparing two records, reading CodeBit
// directories, and small utilities for semantic versions, content hashes, and
// configuration. Commands operate on local files only.
package cmd
