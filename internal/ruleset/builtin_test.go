package ruleset

import (
	"strings"
	"testing"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

func TestLookup(t *testing.T) {
	r, ok := Lookup("dir", platform.Windows, platform.Linux)
	if !ok {
		t.Fatal("Lookup(dir, Windows, Linux) not found")
	}
	if r.SourceCmd != "dir" || r.TargetCmd != "ls" {
		t.Errorf("rule = %q -> %q, want dir -> ls", r.SourceCmd, r.TargetCmd)
	}
	if len(r.Flags) == 0 {
		t.Error("dir rule should carry flag rules")
	}
}

func TestLookup_Reverse(t *testing.T) {
	r, ok := Lookup("ls", platform.Linux, platform.Windows)
	if !ok {
		t.Fatal("Lookup(ls, Linux, Windows) not found")
	}
	if r.TargetCmd != "dir" {
		t.Errorf("target = %q, want dir", r.TargetCmd)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	r, ok := Lookup("DIR", platform.Windows, platform.Linux)
	if !ok {
		t.Fatal("Lookup should lowercase the verb")
	}
	if r.TargetCmd != "ls" {
		t.Errorf("target = %q, want ls", r.TargetCmd)
	}
}

func TestLookup_NotFound(t *testing.T) {
	if _, ok := Lookup("nonexistent", platform.Windows, platform.Linux); ok {
		t.Error("Lookup(nonexistent) should report not found")
	}
}

func TestLookup_BSDTargets(t *testing.T) {
	for _, bsd := range []platform.OS{platform.FreeBSD, platform.OpenBSD, platform.NetBSD} {
		if _, ok := Lookup("dir", platform.Windows, bsd); !ok {
			t.Errorf("Lookup(dir, Windows, %v) not found", bsd)
		}
		if _, ok := Lookup("ls", bsd, platform.Windows); !ok {
			t.Errorf("Lookup(ls, %v, Windows) not found", bsd)
		}
	}
}

func TestAvailableCommands(t *testing.T) {
	cmds := AvailableCommands(platform.Windows, platform.Linux)
	for _, want := range []string{"dir", "copy", "cls"} {
		found := false
		for _, c := range cmds {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("AvailableCommands(Windows, Linux) missing %q", want)
		}
	}

	// Sorted output.
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1] > cmds[i] {
			t.Fatalf("commands not sorted: %q before %q", cmds[i-1], cmds[i])
		}
	}
}

// Flag rules whose source is a strict prefix of another rule's source must
// be declared after the longer rule, or the longer spelling can never match.
func TestBuiltinRules_PrefixesDeclaredLongestFirst(t *testing.T) {
	for key, r := range builtinRules {
		for i, shorter := range r.Flags {
			for j, longer := range r.Flags {
				if j <= i {
					continue
				}
				if longer.Source != shorter.Source && strings.HasPrefix(longer.Source, shorter.Source) {
					t.Errorf("rule %v: flag %q declared after its prefix %q and is unreachable",
						key, longer.Source, shorter.Source)
				}
			}
		}
	}
}
