// Package platform defines the closed operating system, distribution, and
// package manager vocabularies used throughout cmdx, along with name parsing
// and runtime detection.
//
// All three enumerations are fixed sets: translation tables elsewhere in the
// program key on these values, so adding a member means adding table entries,
// not just a constant.
package platform

import "strings"

// OS identifies an operating system that cmdx can translate commands
// between. The string value is the display name.
type OS string

const (
	// Windows is Microsoft Windows (cmd.exe conventions).
	Windows OS = "Windows"
	// Linux is any Linux distribution.
	Linux OS = "Linux"
	// MacOS is Apple macOS (formerly OS X).
	MacOS OS = "macOS"
	// FreeBSD is FreeBSD.
	FreeBSD OS = "FreeBSD"
	// OpenBSD is OpenBSD.
	OpenBSD OS = "OpenBSD"
	// NetBSD is NetBSD.
	NetBSD OS = "NetBSD"
	// Solaris is Oracle Solaris and its relatives.
	Solaris OS = "Solaris"
	// Android is Android (Linux kernel, non-GNU userland).
	Android OS = "Android"
	// IOS is Apple iOS.
	IOS OS = "iOS"
	// UnknownOS is returned when detection or parsing cannot decide.
	UnknownOS OS = "Unknown"
)

// String returns the display name of the operating system.
func (o OS) String() string {
	return string(o)
}

// IsUnixLike reports whether the OS follows Unix command and path
// conventions. Windows, iOS, and Unknown do not.
func (o OS) IsUnixLike() bool {
	switch o {
	case Linux, MacOS, FreeBSD, OpenBSD, NetBSD, Solaris, Android:
		return true
	default:
		return false
	}
}

// IsBSD reports whether the OS is BSD-derived. macOS counts.
func (o OS) IsBSD() bool {
	switch o {
	case FreeBSD, OpenBSD, NetBSD, MacOS:
		return true
	default:
		return false
	}
}

// IsValid reports whether o is a member of the closed OS set, Unknown
// included.
func (o OS) IsValid() bool {
	switch o {
	case Windows, Linux, MacOS, FreeBSD, OpenBSD, NetBSD, Solaris, Android, IOS, UnknownOS:
		return true
	default:
		return false
	}
}

// AllOS returns every concrete operating system, excluding Unknown.
func AllOS() []OS {
	return []OS{Windows, Linux, MacOS, FreeBSD, OpenBSD, NetBSD, Solaris, Android, IOS}
}

// osAliases maps lowercase spellings accepted by ParseOS to OS values.
var osAliases = map[string]OS{
	"windows":   Windows,
	"win":       Windows,
	"win32":     Windows,
	"win64":     Windows,
	"linux":     Linux,
	"gnu/linux": Linux,
	"macos":     MacOS,
	"darwin":    MacOS,
	"osx":       MacOS,
	"mac":       MacOS,
	"freebsd":   FreeBSD,
	"openbsd":   OpenBSD,
	"netbsd":    NetBSD,
	"solaris":   Solaris,
	"sunos":     Solaris,
	"android":   Android,
	"ios":       IOS,
}

// ParseOS resolves a case-insensitive OS name or alias ("win", "darwin",
// "sunos", ...). The second return value is false when the name matches
// nothing; there is no other failure mode.
func ParseOS(name string) (OS, bool) {
	os, ok := osAliases[strings.ToLower(strings.TrimSpace(name))]
	return os, ok
}
