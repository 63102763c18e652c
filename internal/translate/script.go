package translate

import (
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// windowsScriptExts are the Windows script extensions mapped onto .sh.
var windowsScriptExts = []string{".bat", ".cmd", ".ps1"}

// ScriptExtension rewrites a script filename's extension for the target
// OS: .bat/.cmd/.ps1 become .sh and vice versa. The returned warnings
// remind the caller that renaming does not translate the contents. Names
// with no recognized script extension come back unchanged.
func ScriptExtension(name string, from, to platform.OS) (string, []string) {
	if from == to {
		return name, nil
	}

	if from == platform.Windows && to.IsUnixLike() {
		for _, ext := range windowsScriptExts {
			if strings.HasSuffix(strings.ToLower(name), ext) {
				renamed := name[:len(name)-len(ext)] + ".sh"
				return renamed, []string{
					"Script extension renamed; the script body still needs translation",
				}
			}
		}
		return name, nil
	}

	if from.IsUnixLike() && to == platform.Windows {
		if strings.HasSuffix(strings.ToLower(name), ".sh") {
			renamed := name[:len(name)-len(".sh")] + ".bat"
			return renamed, []string{
				"Script extension renamed; the script body still needs translation",
			}
		}
		return name, nil
	}

	return name, nil
}

// Shebang adjusts a script's first line for the target OS. Toward Unix a
// missing interpreter line gains "#!/bin/sh"; toward Windows a shebang is
// dropped, since cmd.exe has no equivalent. The second return value is
// the warnings; the first is the replacement first line, which may be
// empty when the line should be removed.
func Shebang(line string, from, to platform.OS) (string, []string) {
	trimmed := strings.TrimSpace(line)

	if from == platform.Windows && to.IsUnixLike() {
		if strings.HasPrefix(trimmed, "#!") {
			return line, nil
		}
		if trimmed == "" {
			return "#!/bin/sh", []string{"Added #!/bin/sh interpreter line"}
		}
		return "#!/bin/sh\n" + line, []string{"Added #!/bin/sh interpreter line"}
	}

	if from.IsUnixLike() && to == platform.Windows {
		if strings.HasPrefix(trimmed, "#!") {
			return "", []string{"Removed shebang line; cmd.exe has no interpreter line"}
		}
		return line, nil
	}

	return line, nil
}
