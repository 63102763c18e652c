// Package testutil provides utilities for testing cmdx in isolation.
package testutil

import (
	"path/filepath"
	"testing"
)

// SetupTestEnv points the config lookup at an empty temp location so tests
// never pick up the developer's real ~/.config/cmdx/config.lua. Cleanup is
// handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CMDX_CONFIG", filepath.Join(t.TempDir(), "config.lua"))
}
