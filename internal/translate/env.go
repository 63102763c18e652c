package translate

import (
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// windowsToUnixEnv maps Windows variable names to their Unix equivalents.
// Names without an entry keep their spelling; only the reference syntax
// changes.
var windowsToUnixEnv = map[string]string{
	"USERPROFILE":  "HOME",
	"USERNAME":     "USER",
	"APPDATA":      "XDG_CONFIG_HOME",
	"LOCALAPPDATA": "XDG_DATA_HOME",
	"TEMP":         "TMPDIR",
	"TMP":          "TMPDIR",
	"COMPUTERNAME": "HOSTNAME",
	"CD":           "PWD",
	"COMSPEC":      "SHELL",
}

// unixToWindowsEnv is the reverse direction. XDG_CACHE_HOME also lands on
// LOCALAPPDATA, so the map is not a strict inverse.
var unixToWindowsEnv = map[string]string{
	"HOME":            "USERPROFILE",
	"USER":            "USERNAME",
	"XDG_CONFIG_HOME": "APPDATA",
	"XDG_DATA_HOME":   "LOCALAPPDATA",
	"XDG_CACHE_HOME":  "LOCALAPPDATA",
	"TMPDIR":          "TEMP",
	"HOSTNAME":        "COMPUTERNAME",
	"PWD":             "CD",
	"SHELL":           "COMSPEC",
}

// EnvVars rewrites environment variable references between the %VAR%
// syntax of cmd.exe and the $VAR / ${VAR} syntax of Unix shells, renaming
// well-known variables to their counterparts. Text outside references is
// untouched, and an unterminated reference is left as literal text.
func EnvVars(input string, from, to platform.OS) string {
	if from == to {
		return input
	}
	switch {
	case from == platform.Windows && to.IsUnixLike():
		return windowsEnvToUnix(input)
	case from.IsUnixLike() && to == platform.Windows:
		return unixEnvToWindows(input)
	default:
		return input
	}
}

func mapEnvName(table map[string]string, name string) string {
	if mapped, ok := table[strings.ToUpper(name)]; ok {
		return mapped
	}
	return name
}

func windowsEnvToUnix(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	runes := []rune(input)

	for i := 0; i < len(runes); {
		if runes[i] == '%' {
			if end := indexRune(runes[i+1:], '%'); end >= 0 {
				name := string(runes[i+1 : i+1+end])
				out.WriteByte('$')
				out.WriteString(mapEnvName(windowsToUnixEnv, name))
				i += end + 2
				continue
			}
		}
		out.WriteRune(runes[i])
		i++
	}

	return out.String()
}

func unixEnvToWindows(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	runes := []rune(input)

	for i := 0; i < len(runes); {
		if runes[i] == '$' && i+1 < len(runes) {
			if runes[i+1] == '{' {
				if end := indexRune(runes[i+2:], '}'); end >= 0 {
					name := string(runes[i+2 : i+2+end])
					out.WriteByte('%')
					out.WriteString(mapEnvName(unixToWindowsEnv, name))
					out.WriteByte('%')
					i += end + 3
					continue
				}
			} else if isNameRune(runes[i+1]) {
				end := i + 1
				for end < len(runes) && isNameRune(runes[end]) {
					end++
				}
				name := string(runes[i+1 : end])
				out.WriteByte('%')
				out.WriteString(mapEnvName(unixToWindowsEnv, name))
				out.WriteByte('%')
				i = end
				continue
			}
		}
		out.WriteRune(runes[i])
		i++
	}

	return out.String()
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func indexRune(runes []rune, want rune) int {
	for i, r := range runes {
		if r == want {
			return i
		}
	}
	return -1
}
