package ruleset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

func TestLoadString_RegistersRule(t *testing.T) {
	code := `
		rule{
			command = "dir",
			from = "windows",
			to = "linux",
			target = "exa",
			flags = {
				{"/w", "-G", "grid view"},
				{"/a", "-la"},
			},
			notes = "modern ls replacement",
		}
	`
	set, err := LoadString(code, platform.Linux, platform.GenericLinux)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if set.OverlayLen() != 1 {
		t.Fatalf("overlay size = %d, want 1", set.OverlayLen())
	}

	r, ok := set.Lookup("dir", platform.Windows, platform.Linux)
	if !ok {
		t.Fatal("overlay rule not found")
	}

	want := &Rule{
		SourceCmd:        "dir",
		TargetCmd:        "exa",
		PreserveUnmapped: true,
		Notes:            "modern ls replacement",
		Flags: []FlagRule{
			{Source: "/w", Target: "-G", Description: "grid view"},
			{Source: "/a", Target: "-la"},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadString_OverlayWinsOverBuiltin(t *testing.T) {
	set, err := LoadString(`rule{command = "cls", from = "windows", to = "linux", target = "reset"}`,
		platform.Linux, platform.GenericLinux)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	r, ok := set.Lookup("cls", platform.Windows, platform.Linux)
	if !ok {
		t.Fatal("rule not found")
	}
	if r.TargetCmd != "reset" {
		t.Errorf("target = %q, want overlay value reset", r.TargetCmd)
	}

	// The builtin table itself must stay untouched.
	b, _ := Lookup("cls", platform.Windows, platform.Linux)
	if b.TargetCmd != "clear" {
		t.Errorf("builtin target = %q, want clear", b.TargetCmd)
	}
}

func TestLoadString_PlatformTableVisible(t *testing.T) {
	code := `
		if platform.os == "Linux" then
			rule{command = "foo", from = "windows", to = "linux", target = "bar"}
		end
	`
	set, err := LoadString(code, platform.Linux, platform.Debian)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if set.OverlayLen() != 1 {
		t.Errorf("overlay size = %d, want 1 (platform conditional should match)", set.OverlayLen())
	}
}

func TestLoadString_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"missing command", `rule{from = "windows", to = "linux", target = "x"}`},
		{"bad source OS", `rule{command = "x", from = "beos", to = "linux", target = "x"}`},
		{"bad target OS", `rule{command = "x", from = "windows", to = "beos", target = "x"}`},
		{"flag without source", `rule{command = "x", from = "windows", to = "linux", target = "x", flags = {{"", "-a"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.code, platform.Linux, platform.GenericLinux)
			if !errors.Is(err, ErrBadRule) {
				t.Errorf("LoadString() error = %v, want ErrBadRule", err)
			}
		})
	}
}

func TestLoadString_SyntaxError(t *testing.T) {
	_, err := LoadString(`rule{`, platform.Linux, platform.GenericLinux)
	if err == nil {
		t.Fatal("expected error for Lua syntax error")
	}
}

func TestLoadString_Sandboxed(t *testing.T) {
	for _, code := range []string{
		`os.execute("true")`,
		`io.open("/etc/passwd")`,
		`require("socket")`,
	} {
		if _, err := LoadString(code, platform.Linux, platform.GenericLinux); err == nil {
			t.Errorf("code %q should fail in the sandbox", code)
		}
	}
}
