package pkgmgr

import "github.com/cmdx-tool/cmdx/internal/platform"

// opMapping is the target manager's syntax for one operation.
type opMapping struct {
	// Command is the full base invocation, e.g. "apt list --installed".
	Command string
	// RequiresSudo reports that the operation usually needs root.
	RequiresSudo bool
	// Notes is surfaced as a warning whenever the mapping is used.
	Notes string
}

type opKey struct {
	PM platform.PackageManager
	Op Operation
}

func op(command string, sudo bool) opMapping {
	return opMapping{Command: command, RequiresSudo: sudo}
}

func opNote(command string, sudo bool, notes string) opMapping {
	return opMapping{Command: command, RequiresSudo: sudo, Notes: notes}
}

// operationMappings holds each manager's syntax for the nine operations.
var operationMappings = buildOperationMappings()

func buildOperationMappings() map[opKey]opMapping {
	m := make(map[opKey]opMapping)
	put := func(pm platform.PackageManager, o Operation, mapping opMapping) {
		m[opKey{PM: pm, Op: o}] = mapping
	}

	// apt (Debian, Ubuntu)
	put(platform.Apt, Install, op("apt install", true))
	put(platform.Apt, Remove, op("apt remove", true))
	put(platform.Apt, Update, op("apt update", true))
	put(platform.Apt, Upgrade, op("apt upgrade", true))
	put(platform.Apt, Search, op("apt search", false))
	put(platform.Apt, Info, op("apt show", false))
	put(platform.Apt, List, op("apt list --installed", false))
	put(platform.Apt, Clean, op("apt clean", true))
	put(platform.Apt, AutoRemove, op("apt autoremove", true))

	// yum (RHEL, CentOS)
	put(platform.Yum, Install, op("yum install", true))
	put(platform.Yum, Remove, op("yum remove", true))
	put(platform.Yum, Update, op("yum check-update", false))
	put(platform.Yum, Upgrade, op("yum update", true))
	put(platform.Yum, Search, op("yum search", false))
	put(platform.Yum, Info, op("yum info", false))
	put(platform.Yum, List, op("yum list installed", false))
	put(platform.Yum, Clean, op("yum clean all", true))
	put(platform.Yum, AutoRemove, op("yum autoremove", true))

	// dnf (Fedora)
	put(platform.Dnf, Install, op("dnf install", true))
	put(platform.Dnf, Remove, op("dnf remove", true))
	put(platform.Dnf, Update, op("dnf check-update", false))
	put(platform.Dnf, Upgrade, op("dnf upgrade", true))
	put(platform.Dnf, Search, op("dnf search", false))
	put(platform.Dnf, Info, op("dnf info", false))
	put(platform.Dnf, List, op("dnf list installed", false))
	put(platform.Dnf, Clean, op("dnf clean all", true))
	put(platform.Dnf, AutoRemove, op("dnf autoremove", true))

	// pacman (Arch)
	put(platform.Pacman, Install, op("pacman -S", true))
	put(platform.Pacman, Remove, op("pacman -R", true))
	put(platform.Pacman, Update, op("pacman -Sy", true))
	put(platform.Pacman, Upgrade, op("pacman -Syu", true))
	put(platform.Pacman, Search, op("pacman -Ss", false))
	put(platform.Pacman, Info, op("pacman -Si", false))
	put(platform.Pacman, List, op("pacman -Q", false))
	put(platform.Pacman, Clean, op("pacman -Sc", true))
	put(platform.Pacman, AutoRemove, opNote("pacman -Rs", true, "Removes package with unused dependencies"))

	// zypper (openSUSE)
	put(platform.Zypper, Install, op("zypper install", true))
	put(platform.Zypper, Remove, op("zypper remove", true))
	put(platform.Zypper, Update, op("zypper refresh", true))
	put(platform.Zypper, Upgrade, op("zypper update", true))
	put(platform.Zypper, Search, op("zypper search", false))
	put(platform.Zypper, Info, op("zypper info", false))
	put(platform.Zypper, List, op("zypper search --installed-only", false))
	put(platform.Zypper, Clean, op("zypper clean", true))
	put(platform.Zypper, AutoRemove, op("zypper remove --clean-deps", true))

	// apk (Alpine)
	put(platform.Apk, Install, op("apk add", true))
	put(platform.Apk, Remove, op("apk del", true))
	put(platform.Apk, Update, op("apk update", true))
	put(platform.Apk, Upgrade, op("apk upgrade", true))
	put(platform.Apk, Search, op("apk search", false))
	put(platform.Apk, Info, op("apk info", false))
	put(platform.Apk, List, op("apk list --installed", false))
	put(platform.Apk, Clean, op("apk cache clean", true))
	put(platform.Apk, AutoRemove, opNote("apk del", true, "Use with package name and dependencies"))

	// emerge (Gentoo)
	put(platform.Emerge, Install, op("emerge", true))
	put(platform.Emerge, Remove, op("emerge --unmerge", true))
	put(platform.Emerge, Update, op("emerge --sync", true))
	put(platform.Emerge, Upgrade, op("emerge --update --deep --with-bdeps=y @world", true))
	put(platform.Emerge, Search, op("emerge --search", false))
	put(platform.Emerge, Info, op("emerge --info", false))
	put(platform.Emerge, List, opNote("qlist -I", false, "Requires portage-utils"))
	put(platform.Emerge, Clean, op("emerge --depclean", true))
	put(platform.Emerge, AutoRemove, op("emerge --depclean", true))

	// xbps (Void)
	put(platform.Xbps, Install, op("xbps-install", true))
	put(platform.Xbps, Remove, op("xbps-remove", true))
	put(platform.Xbps, Update, op("xbps-install -S", true))
	put(platform.Xbps, Upgrade, op("xbps-install -Su", true))
	put(platform.Xbps, Search, op("xbps-query -Rs", false))
	put(platform.Xbps, Info, op("xbps-query -R", false))
	put(platform.Xbps, List, op("xbps-query -l", false))
	put(platform.Xbps, Clean, op("xbps-remove -O", true))
	put(platform.Xbps, AutoRemove, op("xbps-remove -o", true))

	// nix (NixOS). Per-user profiles, no sudo needed.
	put(platform.Nix, Install, op("nix-env -i", false))
	put(platform.Nix, Remove, op("nix-env -e", false))
	put(platform.Nix, Update, op("nix-channel --update", false))
	put(platform.Nix, Upgrade, op("nix-env -u", false))
	put(platform.Nix, Search, op("nix search", false))
	put(platform.Nix, Info, op("nix-env -qa --description", false))
	put(platform.Nix, List, op("nix-env -q", false))
	put(platform.Nix, Clean, op("nix-collect-garbage", false))
	put(platform.Nix, AutoRemove, op("nix-collect-garbage -d", false))

	return m
}

// flagMapping maps one source flag to the target manager's spelling for a
// given operation. An empty Target drops the flag silently.
type flagMapping struct {
	Source      string
	Target      string
	Description string
}

type flagKey struct {
	From platform.PackageManager
	To   platform.PackageManager
	Op   Operation
}

func fm(source, target, description string) flagMapping {
	return flagMapping{Source: source, Target: target, Description: description}
}

// flagMappings covers the manager pairs and operations where flag syntax
// differs. Pairs absent from the table preserve flags unchanged with a
// warning.
var flagMappings = buildFlagMappings()

func buildFlagMappings() map[flagKey][]flagMapping {
	m := make(map[flagKey][]flagMapping)
	put := func(from, to platform.PackageManager, o Operation, mappings ...flagMapping) {
		m[flagKey{From: from, To: to, Op: o}] = mappings
	}

	put(platform.Apt, platform.Dnf, Install,
		fm("-y", "-y", "Assume yes to all prompts"),
		fm("--yes", "-y", "Assume yes to all prompts"),
		fm("--assume-yes", "-y", "Assume yes"),
		fm("--no-install-recommends", "--setopt=install_weak_deps=False", "Don't install weak dependencies"),
		fm("--reinstall", "--reinstall", "Reinstall package"),
		fm("-q", "-q", "Quiet mode"),
		fm("--quiet", "--quiet", "Quiet mode"))

	put(platform.Apt, platform.Yum, Install,
		fm("-y", "-y", "Assume yes"),
		fm("--yes", "-y", "Assume yes"),
		fm("--assume-yes", "-y", "Assume yes"),
		fm("--reinstall", "reinstall", "Reinstall package"),
		fm("-q", "-q", "Quiet mode"),
		fm("--quiet", "--quiet", "Quiet mode"))

	put(platform.Apt, platform.Pacman, Install,
		fm("-y", "--noconfirm", "No confirmation"),
		fm("--yes", "--noconfirm", "No confirmation"),
		fm("--assume-yes", "--noconfirm", "No confirmation"),
		fm("--no-install-recommends", "--asdeps", "Install as dependencies"),
		fm("-q", "-q", "Quiet"),
		fm("--quiet", "--quiet", "Quiet"))

	put(platform.Apt, platform.Zypper, Install,
		fm("-y", "-y", "Assume yes"),
		fm("--yes", "--no-confirm", "No confirmation"),
		fm("--assume-yes", "--non-interactive", "Non-interactive"),
		fm("--reinstall", "--force", "Force reinstall"),
		fm("-q", "-q", "Quiet"))

	put(platform.Dnf, platform.Apt, Install,
		fm("-y", "-y", "Assume yes"),
		fm("--assumeyes", "--assume-yes", "Assume yes"),
		fm("--reinstall", "--reinstall", "Reinstall"),
		fm("-q", "-q", "Quiet"),
		fm("--quiet", "--quiet", "Quiet"))

	put(platform.Yum, platform.Apt, Install,
		fm("-y", "-y", "Assume yes"),
		fm("--assumeyes", "--assume-yes", "Assume yes"),
		fm("-q", "-q", "Quiet"),
		fm("--quiet", "--quiet", "Quiet"))

	put(platform.Dnf, platform.Pacman, Install,
		fm("-y", "--noconfirm", "No confirmation"),
		fm("--assumeyes", "--noconfirm", "No confirmation"),
		fm("-q", "-q", "Quiet"))

	put(platform.Pacman, platform.Apt, Install,
		fm("--noconfirm", "-y", "Assume yes"),
		fm("--asdeps", "", "Install as dependency (no direct equivalent)"),
		fm("-q", "-q", "Quiet"),
		fm("--quiet", "--quiet", "Quiet"))

	put(platform.Pacman, platform.Dnf, Install,
		fm("--noconfirm", "-y", "Assume yes"),
		fm("-q", "-q", "Quiet"))

	put(platform.Apt, platform.Dnf, Remove,
		fm("-y", "-y", "Assume yes"),
		fm("--yes", "-y", "Assume yes"),
		fm("--purge", "", "Purge config files (no direct equivalent)"),
		fm("--auto-remove", "--noautoremove", "Don't auto-remove dependencies"))

	put(platform.Apt, platform.Pacman, Remove,
		fm("-y", "--noconfirm", "No confirmation"),
		fm("--yes", "--noconfirm", "No confirmation"),
		fm("--purge", "-n", "Remove config files"))

	put(platform.Pacman, platform.Apt, Remove,
		fm("--noconfirm", "-y", "Assume yes"),
		fm("-n", "--purge", "Remove config files"),
		fm("-s", "--auto-remove", "Remove unused dependencies"))

	put(platform.Apt, platform.Dnf, Upgrade,
		fm("-y", "-y", "Assume yes"),
		fm("--yes", "-y", "Assume yes"),
		fm("-q", "-q", "Quiet"))

	put(platform.Apt, platform.Pacman, Upgrade,
		fm("-y", "--noconfirm", "No confirmation"),
		fm("--yes", "--noconfirm", "No confirmation"))

	put(platform.Pacman, platform.Apt, Upgrade,
		fm("--noconfirm", "-y", "Assume yes"))

	put(platform.Apt, platform.Dnf, Search,
		fm("-n", "", "Search names only (different in DNF)"),
		fm("--names-only", "", "Search names only"))

	put(platform.Apt, platform.Pacman, Search,
		fm("-n", "", "Search names only"),
		fm("--names-only", "", "Search names only"))

	// -v is understood the same way across the apt/dnf/yum/zypper family.
	family := []platform.PackageManager{platform.Apt, platform.Dnf, platform.Yum, platform.Zypper}
	for _, from := range family {
		for _, to := range family {
			if from == to {
				continue
			}
			for _, o := range []Operation{Install, Remove, Upgrade} {
				k := flagKey{From: from, To: to, Op: o}
				m[k] = append(m[k], fm("-v", "-v", "Verbose output"))
			}
		}
	}

	return m
}
