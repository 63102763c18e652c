package ruleset

import (
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// windowsNative is the set of verbs treated as cmd.exe built-ins or
// standard Windows utilities. Verbs that exist on both families (ping,
// echo, mkdir, ...) appear in both sets; the engine uses the overlap to
// decide between passthrough and flag translation.
var windowsNative = makeSet(
	"dir", "copy", "xcopy", "move", "del", "erase", "rmdir", "rd",
	"mkdir", "md", "type", "cls", "echo", "findstr", "find",
	"tasklist", "taskkill", "ipconfig", "systeminfo", "hostname",
	"whoami", "set", "attrib", "fc", "more", "ren", "rename", "tree",
	"sort", "where", "ping", "tracert", "netstat", "chkdsk", "mklink",
	"help", "wmic", "tar", "curl",
)

// unixNative is the set of verbs treated as standard utilities on every
// Unix-like OS.
var unixNative = makeSet(
	"ls", "cp", "mv", "rm", "cat", "clear", "grep", "ps", "kill",
	"pkill", "ifconfig", "ip", "uname", "env", "printenv", "chmod",
	"diff", "less", "more", "which", "whereis", "touch", "head",
	"tail", "ping", "traceroute", "ss", "netstat", "tar", "curl",
	"wget", "df", "du", "ln", "man", "echo", "mkdir", "rmdir",
	"hostname", "whoami", "sort", "tree", "find", "fsck", "top",
	"sed", "awk", "chown", "chgrp", "mount", "umount",
)

func makeSet(verbs ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		s[v] = struct{}{}
	}
	return s
}

// IsNative reports whether verb is a standard command on the given OS.
// The check is case-insensitive.
func IsNative(verb string, os platform.OS) bool {
	v := strings.ToLower(verb)
	if os == platform.Windows {
		_, ok := windowsNative[v]
		return ok
	}
	if os.IsUnixLike() {
		_, ok := unixNative[v]
		return ok
	}
	return false
}

// IsKnownTarget reports whether verb looks like a command belonging to the
// given OS: either native to it, or appearing in the rule table as a source
// verb of that OS or as the verb a rule into that OS produces. Used as the
// last passthrough check before giving up on a translation.
func IsKnownTarget(verb string, os platform.OS) bool {
	v := strings.ToLower(verb)
	if IsNative(v, os) {
		return true
	}
	for key, r := range builtinRules {
		if key.From == os && key.Command == v {
			return true
		}
		if key.To == os {
			target := r.TargetCmd
			if i := strings.IndexByte(target, ' '); i >= 0 {
				target = target[:i]
			}
			if target == v {
				return true
			}
		}
	}
	return false
}
