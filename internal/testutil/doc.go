// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv, SetConfigHome),
// the working directory (MustChdir), fixture files (MustWriteFile), and cleanup
// (MustClose).
package testutil
