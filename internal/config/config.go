// Package config loads the optional cmdx user configuration. The config is
// a Lua file executed in a sandboxed VM with the host platform table
// injected, so defaults can differ per machine:
//
//	cmdx = {
//	    defaults = {
//	        from = "windows",
//	        to = platform.os,
//	        package_manager = platform.package_manager,
//	    },
//	    rules = "~/.config/cmdx/rules.lua",
//	    output = { verbose = true },
//	}
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// EnvConfigPath overrides the default config file location when set.
const EnvConfigPath = "CMDX_CONFIG"

// Config holds user-level defaults applied when the corresponding CLI
// flags are not given. The zero value means "no defaults configured".
type Config struct {
	// Defaults are fallback values for the --from/--to flags.
	Defaults Defaults `json:"defaults,omitempty"`
	// Rules is the path of a Lua rule overlay, loaded unless --rules is
	// given. A leading ~ expands to the home directory.
	Rules string `json:"rules,omitempty"`
	// Output holds default output options.
	Output Output `json:"output,omitempty"`
}

// Defaults are fallback translation endpoints.
type Defaults struct {
	From           platform.OS             `json:"from,omitempty"`
	To             platform.OS             `json:"to,omitempty"`
	PackageManager platform.PackageManager `json:"package_manager,omitempty"`
}

// Output holds default output options.
type Output struct {
	Verbose bool `json:"verbose,omitempty"`
	JSON    bool `json:"json,omitempty"`
}

// Path returns the config file location: $CMDX_CONFIG when set, otherwise
// ~/.config/cmdx/config.lua.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cmdx", "config.lua")
}

// expandHome rewrites a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
