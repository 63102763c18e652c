package translate

import (
	"fmt"
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// IsWindowsPath reports whether a path looks Windows-shaped: a drive
// letter prefix, a UNC prefix, or any backslash.
func IsWindowsPath(path string) bool {
	if len(path) >= 2 && isASCIILetter(path[0]) && path[1] == ':' {
		return true
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	return strings.ContainsRune(path, '\\')
}

// IsUnixPath reports whether a path looks Unix-shaped.
func IsUnixPath(path string) bool {
	return strings.HasPrefix(path, "/") ||
		strings.HasPrefix(path, "~/") ||
		strings.HasPrefix(path, "./") ||
		strings.HasPrefix(path, "../")
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Path translates a filesystem path between OS conventions. Windows to
// Unix maps drive letters onto /mnt mount points; Unix to Windows maps
// mount points back to drive letters and applies fixed conventions for
// home directories. Same-OS and Unix-to-Unix input passes through.
// For pairs with no fixed direction the path's own shape decides.
func Path(path string, from, to platform.OS) (*PathResult, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, ErrEmptyPath
	}

	if from == to {
		return newPathResult(trimmed, trimmed, from, to), nil
	}

	result := newPathResult("", trimmed, from, to)

	switch {
	case from == platform.Windows && to.IsUnixLike():
		result.Path = windowsToUnix(trimmed, result)
	case from.IsUnixLike() && to == platform.Windows:
		result.Path = unixToWindows(trimmed, result)
	case from.IsUnixLike() && to.IsUnixLike():
		result.Path = trimmed
	default:
		if IsWindowsPath(trimmed) {
			result.Path = windowsToUnix(trimmed, result)
		} else {
			result.Path = unixToWindows(trimmed, result)
		}
	}

	return result, nil
}

// PathString is Path keyed by OS names.
func PathString(path, from, to string) (*PathResult, error) {
	fromOS, ok := platform.ParseOS(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOS, from)
	}
	toOS, ok := platform.ParseOS(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOS, to)
	}
	return Path(path, fromOS, toOS)
}

// PathAuto detects the path's shape and translates to the target OS.
// Unix-shaped input is attributed to Linux.
func PathAuto(path string, to platform.OS) (*PathResult, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	from := platform.Linux
	if IsWindowsPath(path) {
		from = platform.Windows
	}
	return Path(path, from, to)
}

// Paths translates several paths against one OS pair. Results and errors
// are positional.
func Paths(paths []string, from, to platform.OS) ([]*PathResult, []error) {
	results := make([]*PathResult, len(paths))
	errs := make([]error, len(paths))
	for i, p := range paths {
		results[i], errs[i] = Path(p, from, to)
	}
	return results, errs
}

// windowsToUnix rewrites one Windows path into Unix form: drive letter to
// /mnt mount point (lowercased, WSL convention), UNC prefix to //, all
// backslashes to slashes, duplicate separators collapsed.
func windowsToUnix(path string, result *PathResult) string {
	p := path

	if len(p) >= 2 && isASCIILetter(p[0]) && p[1] == ':' {
		p = "/mnt/" + strings.ToLower(p[:1]) + p[2:]
		result.DriveTranslated = true
	}

	if strings.HasPrefix(p, `\\`) {
		p = "//" + p[2:]
		result.Warnings = append(result.Warnings, "UNC path converted to network path format")
	}

	p = strings.ReplaceAll(p, `\`, "/")

	if strings.HasPrefix(p, "//") {
		return "//" + joinNonEmpty(p[2:], "/")
	}

	collapsed := joinNonEmpty(p, "/")
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) || (len(path) >= 2 && path[1] == ':') {
		return "/" + collapsed
	}
	return collapsed
}

// unixToWindows rewrites one Unix path into Windows form. /mnt/x maps back
// to a drive letter; /home and ~ follow fixed Windows conventions; any
// other absolute path lands on C:.
func unixToWindows(path string, result *PathResult) string {
	p := path

	switch {
	case isMountPoint(p):
		p = strings.ToUpper(p[5:6]) + ":" + p[6:]
		result.DriveTranslated = true
	case strings.HasPrefix(p, "/home/"):
		p = `C:\Users` + p[5:]
		result.DriveTranslated = true
		result.Warnings = append(result.Warnings, `/home mapped to C:\Users`)
	case strings.HasPrefix(p, "~/"):
		p = "%USERPROFILE%" + p[1:]
		result.Warnings = append(result.Warnings, "~ translated to %USERPROFILE%")
	case p == "~":
		p = "%USERPROFILE%"
		result.Warnings = append(result.Warnings, "~ translated to %USERPROFILE%")
	case strings.HasPrefix(p, "//"):
		p = `\\` + p[2:]
	case strings.HasPrefix(p, "/"):
		p = "C:" + p
		result.DriveTranslated = true
		result.Warnings = append(result.Warnings, "Root path mapped to C: drive")
	}

	p = strings.ReplaceAll(p, "/", `\`)

	if strings.HasPrefix(p, `\\`) {
		return `\\` + joinNonEmpty(p[2:], `\`)
	}
	return joinNonEmpty(p, `\`)
}

// isMountPoint reports whether p starts with /mnt/x for a single drive
// letter x followed by a separator or the end of the path.
func isMountPoint(p string) bool {
	if !strings.HasPrefix(p, "/mnt/") || len(p) < 6 {
		return false
	}
	if !isASCIILetter(p[5]) {
		return false
	}
	return len(p) == 6 || p[6] == '/'
}

// joinNonEmpty collapses runs of the separator by dropping empty parts.
func joinNonEmpty(s, sep string) string {
	parts := strings.Split(s, sep)
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
