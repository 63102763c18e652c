package ruleset

import (
	"sort"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// builtinRules is the built-in translation table, keyed by verb and OS
// pair. Built once at init; treated as immutable afterwards.
var builtinRules = buildBuiltinRules()

func buildBuiltinRules() map[Key]*Rule {
	m := make(map[Key]*Rule)

	put := func(cmd string, from, to platform.OS, r *Rule) {
		m[NewKey(cmd, from, to)] = r
	}

	// Windows to Linux/Unix.

	put("dir", platform.Windows, platform.Linux, newRule("dir", "ls",
		flagDesc("/w", "-C", "Wide list format"),
		flagDesc("/s", "-R", "Recursive listing"),
		flagDesc("/b", "-1", "Bare format (names only)"),
		flagDesc("/a", "-la", "All files including hidden"),
		flagDesc("/o:n", "--sort=name", "Sort by name"),
		flagDesc("/o:s", "--sort=size", "Sort by size"),
		flagDesc("/o:d", "--sort=time", "Sort by date"),
		flagDesc("/p", "", "Pause (not directly supported)"),
		flagDesc("/q", "-l", "Show owner"),
	))

	put("dir", platform.Windows, platform.MacOS, newRule("dir", "ls",
		flag("/w", "-C"),
		flag("/s", "-R"),
		flag("/b", "-1"),
		flag("/a", "-la"),
	))

	put("copy", platform.Windows, platform.Linux, newRule("copy", "cp",
		flagDesc("/y", "-f", "Force overwrite"),
		flagDesc("/v", "-v", "Verbose"),
		flagDesc("/a", "", "ASCII mode (N/A)"),
		flagDesc("/b", "", "Binary mode (default)"),
	))

	put("copy", platform.Windows, platform.MacOS, newRule("copy", "cp",
		flag("/y", "-f"),
		flag("/v", "-v"),
	))

	put("xcopy", platform.Windows, platform.Linux, newRule("xcopy", "cp -r",
		flagDesc("/s", "", "Copy subdirs (implied by -r)"),
		flagDesc("/e", "", "Copy empty dirs too"),
		flagDesc("/y", "-f", "Force overwrite"),
		flagDesc("/i", "", "Assume destination is directory"),
		flagDesc("/q", "-q", "Quiet mode"),
	))

	put("move", platform.Windows, platform.Linux, newRule("move", "mv",
		flagDesc("/y", "-f", "Force overwrite"),
	))

	put("move", platform.Windows, platform.MacOS, newRule("move", "mv",
		flag("/y", "-f"),
	))

	put("del", platform.Windows, platform.Linux, newRule("del", "rm",
		flagDesc("/s", "-r", "Recursive"),
		flagDesc("/q", "-f", "Quiet/Force"),
		flagDesc("/f", "-f", "Force"),
		flagDesc("/p", "-i", "Prompt before delete"),
	))

	put("erase", platform.Windows, platform.Linux, newRule("erase", "rm",
		flag("/s", "-r"),
		flag("/q", "-f"),
		flag("/f", "-f"),
		flag("/p", "-i"),
	))

	put("rmdir", platform.Windows, platform.Linux, newRule("rmdir", "rm -r",
		flagDesc("/s", "", "Recursive (implied)"),
		flagDesc("/q", "-f", "Quiet"),
	))

	put("rd", platform.Windows, platform.Linux, newRule("rd", "rm -r",
		flag("/s", ""),
		flag("/q", "-f"),
	))

	put("mkdir", platform.Windows, platform.Linux, newRule("mkdir", "mkdir",
		flagDesc("/p", "-p", "Create parent directories"),
	))

	put("md", platform.Windows, platform.Linux, newRule("md", "mkdir -p"))

	put("type", platform.Windows, platform.Linux, newRule("type", "cat"))
	put("type", platform.Windows, platform.MacOS, newRule("type", "cat"))

	put("cls", platform.Windows, platform.Linux, newRule("cls", "clear"))
	put("cls", platform.Windows, platform.MacOS, newRule("cls", "clear"))

	put("echo", platform.Windows, platform.Linux, newRule("echo", "echo"))

	put("findstr", platform.Windows, platform.Linux, newRule("findstr", "grep",
		flagDesc("/i", "-i", "Case insensitive"),
		flagDesc("/s", "-r", "Recursive"),
		flagDesc("/n", "-n", "Line numbers"),
		flagDesc("/v", "-v", "Invert match"),
		flagDesc("/c:", "-c", "Count matches"),
		flagDesc("/r", "-E", "Regular expressions"),
	))

	// Windows find searches text, unlike Unix find.
	put("find", platform.Windows, platform.Linux, newRule("find", "grep",
		flagDesc("/i", "-i", "Case insensitive"),
		flagDesc("/v", "-v", "Invert match"),
		flagDesc("/c", "-c", "Count lines"),
		flagDesc("/n", "-n", "Line numbers"),
	))

	put("tasklist", platform.Windows, platform.Linux, newRule("tasklist", "ps aux"))
	put("tasklist", platform.Windows, platform.MacOS, newRule("tasklist", "ps aux"))

	put("taskkill", platform.Windows, platform.Linux, newRule("taskkill", "kill",
		flagDesc("/f", "-9", "Force kill"),
		flagDesc("/pid", "", "Process ID (use directly)"),
		flagDesc("/im", "-pkill ", "Image name -> use pkill"),
	))

	put("ipconfig", platform.Windows, platform.Linux, newRule("ipconfig", "ip addr",
		flagDesc("/all", "show", "Show all info"),
		flagDesc("/release", "", "Release DHCP"),
		flagDesc("/renew", "", "Renew DHCP"),
	))

	put("ipconfig", platform.Windows, platform.MacOS, newRule("ipconfig", "ifconfig"))

	put("systeminfo", platform.Windows, platform.Linux, newRule("systeminfo", "uname -a && cat /etc/os-release"))

	put("hostname", platform.Windows, platform.Linux, newRule("hostname", "hostname"))
	put("whoami", platform.Windows, platform.Linux, newRule("whoami", "whoami"))
	put("set", platform.Windows, platform.Linux, newRule("set", "env"))
	put("attrib", platform.Windows, platform.Linux, newRule("attrib", "chmod"))

	put("fc", platform.Windows, platform.Linux, newRule("fc", "diff",
		flagDesc("/b", "", "Binary compare"),
		flagDesc("/c", "-i", "Ignore case"),
		flagDesc("/n", "-n", "Show line numbers"),
		flagDesc("/w", "-w", "Ignore whitespace"),
	))

	put("more", platform.Windows, platform.Linux, newRule("more", "less"))
	put("ren", platform.Windows, platform.Linux, newRule("ren", "mv"))
	put("rename", platform.Windows, platform.Linux, newRule("rename", "mv"))

	put("tree", platform.Windows, platform.Linux, newRule("tree", "tree",
		flagDesc("/f", "", "Show files (default in Linux)"),
		flagDesc("/a", "--charset=ascii", "ASCII characters"),
	))

	put("sort", platform.Windows, platform.Linux, newRule("sort", "sort",
		flagDesc("/r", "-r", "Reverse order"),
		flagDesc("/n", "-n", "Numeric sort"),
	))

	put("where", platform.Windows, platform.Linux, newRule("where", "which"))

	put("ping", platform.Windows, platform.Linux, newRule("ping", "ping",
		flagDesc("-n", "-c", "Count of pings"),
		flagDesc("-t", "", "Continuous ping (use Ctrl+C)"),
		flagDesc("-l", "-s", "Packet size"),
		flagDesc("-w", "-W", "Timeout"),
	))

	put("tracert", platform.Windows, platform.Linux, newRule("tracert", "traceroute",
		flagDesc("-h", "-m", "Max hops"),
		flagDesc("-w", "-w", "Wait timeout"),
	))

	put("netstat", platform.Windows, platform.Linux, newRule("netstat", "ss",
		flagDesc("-a", "-a", "All sockets"),
		flagDesc("-n", "-n", "Numeric addresses"),
		flagDesc("-o", "-p", "Show process"),
		flagDesc("-b", "-p", "Show process name"),
	))

	put("chkdsk", platform.Windows, platform.Linux, newRule("chkdsk", "fsck"))

	// Linux/Unix to Windows.

	put("ls", platform.Linux, platform.Windows, newRule("ls", "dir",
		flagDesc("-la", "/a", "All files long format"),
		flagDesc("-l", "", "Long format (default)"),
		flagDesc("-a", "/a", "All files"),
		flagDesc("-R", "/s", "Recursive"),
		flagDesc("-1", "/b", "One file per line"),
		flagDesc("-S", "/o:s", "Sort by size"),
		flagDesc("--sort=size", "/o:s", "Sort by size"),
		flagDesc("--sort=time", "/o:d", "Sort by time"),
		flagDesc("-t", "/o:d", "Sort by time"),
		flagDesc("-r", "/o:-n", "Reverse order"),
	))

	put("ls", platform.MacOS, platform.Windows, newRule("ls", "dir",
		flag("-la", "/a"),
		flag("-l", ""),
		flag("-a", "/a"),
		flag("-R", "/s"),
	))

	put("cp", platform.Linux, platform.Windows, newRule("cp", "copy",
		flagDesc("-rf", "xcopy /s /e /y", "Recursive force copy"),
		flagDesc("-r", "xcopy /s /e", "Recursive copy"),
		flagDesc("-R", "xcopy /s /e", "Recursive copy"),
		flagDesc("-f", "/y", "Force overwrite"),
		flagDesc("-v", "/v", "Verbose"),
		flagDesc("-i", "/-y", "Interactive/confirm"),
	))

	put("mv", platform.Linux, platform.Windows, newRule("mv", "move",
		flagDesc("-f", "/y", "Force overwrite"),
		flagDesc("-i", "/-y", "Interactive"),
	))

	put("rm", platform.Linux, platform.Windows, newRule("rm", "del",
		flagDesc("-rf", "/s /q", "Recursive force"),
		flagDesc("-r", "/s", "Recursive"),
		flagDesc("-R", "/s", "Recursive"),
		flagDesc("-f", "/q /f", "Force/quiet"),
		flagDesc("-i", "/p", "Interactive"),
	))

	put("cat", platform.Linux, platform.Windows, newRule("cat", "type"))
	put("cat", platform.MacOS, platform.Windows, newRule("cat", "type"))

	put("clear", platform.Linux, platform.Windows, newRule("clear", "cls"))
	put("clear", platform.MacOS, platform.Windows, newRule("clear", "cls"))

	put("grep", platform.Linux, platform.Windows, newRule("grep", "findstr",
		flagDesc("-i", "/i", "Case insensitive"),
		flagDesc("-r", "/s", "Recursive"),
		flagDesc("-R", "/s", "Recursive"),
		flagDesc("-n", "/n", "Line numbers"),
		flagDesc("-v", "/v", "Invert match"),
		flagDesc("-c", "/c:", "Count matches"),
		flagDesc("-E", "/r", "Extended regex"),
	))

	put("ps", platform.Linux, platform.Windows, newRule("ps", "tasklist"))

	put("kill", platform.Linux, platform.Windows, newRule("kill", "taskkill /pid",
		flagDesc("-9", "/f", "Force kill"),
		flagDesc("-SIGKILL", "/f", "Force kill"),
		flagDesc("-SIGTERM", "", "Terminate"),
	))

	put("pkill", platform.Linux, platform.Windows, newRule("pkill", "taskkill /im",
		flagDesc("-9", "/f", "Force kill"),
	))

	put("ifconfig", platform.Linux, platform.Windows, newRule("ifconfig", "ipconfig"))

	put("ip", platform.Linux, platform.Windows, newRule("ip", "ipconfig",
		flagDesc("addr", "/all", "Show addresses"),
		flagDesc("link", "", "Link info"),
		flagDesc("route", "", "Routing table"),
	))

	put("uname", platform.Linux, platform.Windows, newRule("uname", "systeminfo",
		flagDesc("-a", "", "All info"),
		flagDesc("-r", "", "Release"),
	))

	put("env", platform.Linux, platform.Windows, newRule("env", "set"))
	put("printenv", platform.Linux, platform.Windows, newRule("printenv", "set"))
	put("chmod", platform.Linux, platform.Windows, newRule("chmod", "attrib"))

	put("diff", platform.Linux, platform.Windows, newRule("diff", "fc",
		flagDesc("-i", "/c", "Ignore case"),
		flagDesc("-w", "/w", "Ignore whitespace"),
		flagDesc("-n", "/n", "Show line numbers"),
	))

	put("less", platform.Linux, platform.Windows, newRule("less", "more"))
	put("which", platform.Linux, platform.Windows, newRule("which", "where"))
	put("whereis", platform.Linux, platform.Windows, newRule("whereis", "where"))
	put("touch", platform.Linux, platform.Windows, newRule("touch", "type nul >"))
	put("head", platform.Linux, platform.Windows, newRule("head", "more"))
	put("tail", platform.Linux, platform.Windows, newRule("tail", "more"))

	put("ping", platform.Linux, platform.Windows, newRule("ping", "ping",
		flagDesc("-c", "-n", "Count"),
		flagDesc("-s", "-l", "Packet size"),
		flagDesc("-W", "-w", "Timeout"),
	))

	put("traceroute", platform.Linux, platform.Windows, newRule("traceroute", "tracert",
		flagDesc("-m", "-h", "Max hops"),
		flagDesc("-w", "-w", "Wait timeout"),
	))

	put("ss", platform.Linux, platform.Windows, newRule("ss", "netstat",
		flagDesc("-a", "-a", "All sockets"),
		flagDesc("-n", "-n", "Numeric"),
		flagDesc("-p", "-o", "Show process"),
		flagDesc("-t", "", "TCP only"),
		flagDesc("-u", "", "UDP only"),
	))

	// Windows 10+ ships tar and curl.
	put("tar", platform.Linux, platform.Windows, newRule("tar", "tar"))
	put("curl", platform.Linux, platform.Windows, newRule("curl", "curl"))

	put("wget", platform.Linux, platform.Windows, newRule("wget", "curl -O",
		flagDesc("-O", "-o", "Output file"),
		flagDesc("-q", "-s", "Quiet/silent"),
	))

	put("df", platform.Linux, platform.Windows, newRule("df", "wmic logicaldisk get size,freespace,caption"))
	put("du", platform.Linux, platform.Windows, newRule("du", "dir /s"))

	put("ln", platform.Linux, platform.Windows, newRule("ln", "mklink",
		flagDesc("-s", "", "Symbolic link (default in mklink)"),
	))

	put("man", platform.Linux, platform.Windows, newRule("man", "help"))

	// The BSDs share the coreutils verbs with Linux.
	for _, bsd := range []platform.OS{platform.FreeBSD, platform.OpenBSD, platform.NetBSD} {
		put("dir", platform.Windows, bsd, newRule("dir", "ls",
			flag("/w", "-C"),
			flag("/s", "-R"),
			flag("/b", "-1"),
			flag("/a", "-la"),
		))

		put("copy", platform.Windows, bsd, newRule("copy", "cp",
			flag("/y", "-f"),
			flag("/v", "-v"),
		))

		put("ls", bsd, platform.Windows, newRule("ls", "dir",
			flag("-a", "/a"),
			flag("-R", "/s"),
			flag("-1", "/b"),
		))
	}

	return m
}

// Lookup returns the built-in rule for a verb and OS pair, if one exists.
func Lookup(command string, from, to platform.OS) (*Rule, bool) {
	r, ok := builtinRules[NewKey(command, from, to)]
	return r, ok
}

// AvailableCommands returns the sorted source verbs that have a built-in
// rule for the given OS pair.
func AvailableCommands(from, to platform.OS) []string {
	var cmds []string
	for key, r := range builtinRules {
		if key.From == from && key.To == to {
			cmds = append(cmds, r.SourceCmd)
		}
	}
	sort.Strings(cmds)
	return cmds
}
