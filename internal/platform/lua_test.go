package platform

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestInjectPlatformTable_Fields(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	InjectPlatformTable(L, Linux, Arch)

	script := `
		os_name = platform.os
		distro_name = platform.distro
		pm_name = platform.package_manager
		unix_like = platform.is_unix_like
		windows = platform.is_windows
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("script error: %v", err)
	}

	if got := L.GetGlobal("os_name"); got.String() != "Linux" {
		t.Errorf("platform.os = %v, want Linux", got)
	}
	if got := L.GetGlobal("distro_name"); got.String() != "Arch" {
		t.Errorf("platform.distro = %v, want Arch", got)
	}
	if got := L.GetGlobal("pm_name"); got.String() != "pacman" {
		t.Errorf("platform.package_manager = %v, want pacman", got)
	}
	if got := L.GetGlobal("unix_like"); got != lua.LTrue {
		t.Errorf("platform.is_unix_like = %v, want true", got)
	}
	if got := L.GetGlobal("windows"); got != lua.LFalse {
		t.Errorf("platform.is_windows = %v, want false", got)
	}
}

func TestInjectPlatformTable_AllOS(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	InjectPlatformTable(L, Windows, GenericLinux)

	if err := L.DoString(`n = #platform.all_os; first = platform.all_os[1]`); err != nil {
		t.Fatalf("script error: %v", err)
	}

	if got := L.GetGlobal("n"); got.String() != "9" {
		t.Errorf("#platform.all_os = %v, want 9", got)
	}
	if got := L.GetGlobal("first"); got.String() != "Windows" {
		t.Errorf("platform.all_os[1] = %v, want Windows", got)
	}
}

func TestInjectPlatformTable_ReadOnly(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	InjectPlatformTable(L, MacOS, GenericLinux)

	err := L.DoString(`platform.os = "hacked"`)
	if err == nil {
		t.Fatal("expected error when writing to platform table")
	}

	err = L.DoString(`platform.new_field = 1`)
	if err == nil {
		t.Fatal("expected error when adding field to platform table")
	}
}
