package ruleset

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// ErrBadRule marks a rule file entry that could not be registered.
var ErrBadRule = errors.New("invalid rule")

// LoadFile executes a Lua rule file and returns a Set with the rules it
// registered overlaid on the built-in table. The script runs sandboxed
// (no io, os, or module loading) and sees two globals:
//
//	platform  read-only table describing the host
//	rule{...} registers one translation rule
//
// Rule table fields: command, from, to, target (strings, required except
// target which may be ""), flags (array of {source, target [, desc]}),
// preserve_unmapped (boolean, default true), notes (string).
func LoadFile(path string, hostOS platform.OS, distro platform.Distro) (*Set, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	return LoadString(string(code), hostOS, distro)
}

// LoadString is LoadFile for in-memory rule code.
func LoadString(code string, hostOS platform.OS, distro platform.Distro) (*Set, error) {
	L := newSandboxedVM()
	defer L.Close()

	platform.InjectPlatformTable(L, hostOS, distro)

	set := Builtin()
	var regErr error

	L.SetGlobal("rule", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		if err := registerRule(set, tbl); err != nil && regErr == nil {
			regErr = err
		}
		return 0
	}))

	if err := L.DoString(code); err != nil {
		return nil, fmt.Errorf("rule file error: %w", err)
	}
	if regErr != nil {
		return nil, regErr
	}
	return set, nil
}

// registerRule converts one rule{...} table into an overlay entry.
func registerRule(set *Set, tbl *lua.LTable) error {
	command := stringField(tbl, "command")
	if command == "" {
		return fmt.Errorf("%w: missing command", ErrBadRule)
	}

	from, ok := platform.ParseOS(stringField(tbl, "from"))
	if !ok {
		return fmt.Errorf("%w: unknown source OS %q for %q", ErrBadRule, stringField(tbl, "from"), command)
	}
	to, ok := platform.ParseOS(stringField(tbl, "to"))
	if !ok {
		return fmt.Errorf("%w: unknown target OS %q for %q", ErrBadRule, stringField(tbl, "to"), command)
	}

	r := &Rule{
		SourceCmd:        command,
		TargetCmd:        stringField(tbl, "target"),
		PreserveUnmapped: true,
		Notes:            stringField(tbl, "notes"),
	}

	if v := tbl.RawGetString("preserve_unmapped"); v.Type() == lua.LTBool {
		r.PreserveUnmapped = bool(v.(lua.LBool))
	}

	if v := tbl.RawGetString("flags"); v.Type() == lua.LTTable {
		var badFlag error
		v.(*lua.LTable).ForEach(func(_, fv lua.LValue) {
			if badFlag != nil {
				return
			}
			ft, ok := fv.(*lua.LTable)
			if !ok {
				badFlag = fmt.Errorf("%w: flag entry for %q is not a table", ErrBadRule, command)
				return
			}
			fr := FlagRule{
				Source:      lvString(ft.RawGetInt(1)),
				Target:      lvString(ft.RawGetInt(2)),
				Description: lvString(ft.RawGetInt(3)),
			}
			if fr.Source == "" {
				badFlag = fmt.Errorf("%w: flag entry for %q has no source", ErrBadRule, command)
				return
			}
			r.Flags = append(r.Flags, fr)
		})
		if badFlag != nil {
			return badFlag
		}
	}

	set.add(NewKey(command, from, to), r)
	return nil
}

func stringField(tbl *lua.LTable, name string) string {
	return lvString(tbl.RawGetString(name))
}

func lvString(v lua.LValue) string {
	if v.Type() == lua.LTString {
		return v.String()
	}
	return ""
}

// newSandboxedVM creates a Lua state with command execution, filesystem
// access, and module loading removed. string, table, and math stay.
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
