package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// ParseError is a config file error with a user-facing message and the raw
// Lua detail.
type ParseError struct {
	Message string
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Load reads and executes the config file at path. A missing file is not
// an error: the zero config is returned so every default stays unset.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	code, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseString(ctx, string(code))
}

// ParseString executes Lua config code and extracts the global cmdx table.
func ParseString(ctx context.Context, code string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()

	hostOS := platform.DetectOS()
	distro, err := platform.DetectDistro(ctx)
	if err != nil {
		distro = platform.GenericLinux
	}
	platform.InjectPlatformTable(L, hostOS, distro)

	if err := L.DoString(code); err != nil {
		return nil, &ParseError{Message: "Lua syntax error", Detail: err.Error()}
	}

	return extractConfig(L)
}

// extractConfig reads the global "cmdx" table. An absent table yields the
// zero config.
func extractConfig(L *lua.LState) (*Config, error) {
	root := L.GetGlobal("cmdx")
	if root.Type() == lua.LTNil {
		return &Config{}, nil
	}
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "invalid 'cmdx' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	cfg := &Config{}
	table := root.(*lua.LTable)

	if v := table.RawGetString("defaults"); v.Type() == lua.LTTable {
		defaults, err := extractDefaults(v.(*lua.LTable))
		if err != nil {
			return nil, err
		}
		cfg.Defaults = defaults
	}

	if v := table.RawGetString("rules"); v.Type() == lua.LTString {
		cfg.Rules = expandHome(v.String())
	}

	if v := table.RawGetString("output"); v.Type() == lua.LTTable {
		out := v.(*lua.LTable)
		if b := out.RawGetString("verbose"); b.Type() == lua.LTBool {
			cfg.Output.Verbose = bool(b.(lua.LBool))
		}
		if b := out.RawGetString("json"); b.Type() == lua.LTBool {
			cfg.Output.JSON = bool(b.(lua.LBool))
		}
	}

	return cfg, nil
}

func extractDefaults(table *lua.LTable) (Defaults, error) {
	var defaults Defaults

	if v := table.RawGetString("from"); v.Type() == lua.LTString {
		os, ok := platform.ParseOS(v.String())
		if !ok {
			return defaults, &ParseError{
				Message: "invalid defaults.from",
				Detail:  fmt.Sprintf("unknown operating system %q", v.String()),
			}
		}
		defaults.From = os
	}

	if v := table.RawGetString("to"); v.Type() == lua.LTString {
		os, ok := platform.ParseOS(v.String())
		if !ok {
			return defaults, &ParseError{
				Message: "invalid defaults.to",
				Detail:  fmt.Sprintf("unknown operating system %q", v.String()),
			}
		}
		defaults.To = os
	}

	if v := table.RawGetString("package_manager"); v.Type() == lua.LTString {
		pm, ok := platform.ParsePackageManager(v.String())
		if !ok {
			return defaults, &ParseError{
				Message: "invalid defaults.package_manager",
				Detail:  fmt.Sprintf("unknown package manager %q", v.String()),
			}
		}
		defaults.PackageManager = pm
	}

	return defaults, nil
}

// newSandboxedVM creates a Lua state with command execution, filesystem
// access, and module loading removed.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	L.SetGlobal("os", lua.LNil)
	L.SetGlobal("io", lua.LNil)
	L.SetGlobal("require", lua.LNil)
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	L.SetGlobal("load", lua.LNil)
	L.SetGlobal("loadstring", lua.LNil)
	L.SetGlobal("debug", lua.LNil)
	return L
}
