package translate

import (
	"testing"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

func TestScriptExtension(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		from     platform.OS
		to       platform.OS
		want     string
		warnWant bool
	}{
		{"bat to sh", "build.bat", platform.Windows, platform.Linux, "build.sh", true},
		{"cmd to sh", "deploy.cmd", platform.Windows, platform.Linux, "deploy.sh", true},
		{"ps1 to sh", "setup.ps1", platform.Windows, platform.Linux, "setup.sh", true},
		{"uppercase extension", "BUILD.BAT", platform.Windows, platform.Linux, "BUILD.sh", true},
		{"sh to bat", "build.sh", platform.Linux, platform.Windows, "build.bat", true},
		{"non-script name untouched", "notes.txt", platform.Windows, platform.Linux, "notes.txt", false},
		{"same OS untouched", "build.bat", platform.Windows, platform.Windows, "build.bat", false},
		{"unix to unix untouched", "build.sh", platform.Linux, platform.MacOS, "build.sh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := ScriptExtension(tt.file, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("ScriptExtension(%q) = %q, want %q", tt.file, got, tt.want)
			}
			if (len(warnings) > 0) != tt.warnWant {
				t.Errorf("warnings = %v, warn expected: %v", warnings, tt.warnWant)
			}
		})
	}
}

func TestShebang(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		from     platform.OS
		to       platform.OS
		want     string
		warnWant bool
	}{
		{"add shebang to bare line", "echo hello", platform.Windows, platform.Linux, "#!/bin/sh\necho hello", true},
		{"add shebang to empty first line", "", platform.Windows, platform.Linux, "#!/bin/sh", true},
		{"existing shebang kept", "#!/bin/bash", platform.Windows, platform.Linux, "#!/bin/bash", false},
		{"strip shebang toward windows", "#!/bin/sh", platform.Linux, platform.Windows, "", true},
		{"plain line toward windows kept", "echo hello", platform.Linux, platform.Windows, "echo hello", false},
		{"unix to unix untouched", "#!/bin/sh", platform.Linux, platform.MacOS, "#!/bin/sh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := Shebang(tt.line, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Shebang(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if (len(warnings) > 0) != tt.warnWant {
				t.Errorf("warnings = %v, warn expected: %v", warnings, tt.warnWant)
			}
		})
	}
}
