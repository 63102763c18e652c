package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

// parseCommand splits a package manager invocation into the detected
// manager, the operation, and the remaining arguments. A leading "sudo" is
// skipped.
func parseCommand(input string) (platform.PackageManager, Operation, []string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", 0, nil, ErrEmptyCommand
	}

	parts := strings.Fields(trimmed)
	start := 0
	if parts[0] == "sudo" && len(parts) > 1 {
		start = 1
	}

	pm, ok := platform.ParsePackageManager(parts[start])
	if !ok {
		return "", 0, nil, fmt.Errorf("%w: '%s'", ErrNotPackageManagerCommand, parts[start])
	}
	start++

	if start >= len(parts) {
		return "", 0, nil, fmt.Errorf("%w: '%s'", ErrNotPackageManagerCommand, input)
	}

	operation, err := detectOperation(pm, parts[start])
	if err != nil {
		return "", 0, nil, err
	}

	args := append([]string(nil), parts[start+1:]...)
	return pm, operation, args, nil
}

// detectOperation maps the token after the manager name to an operation.
// Subcommand managers (apt, dnf, zypper, apk) use words; pacman, xbps, and
// nix use flag clusters. Matching is case-insensitive.
func detectOperation(pm platform.PackageManager, token string) (Operation, error) {
	t := strings.ToLower(token)

	switch pm {
	case platform.Apt:
		switch t {
		case "install":
			return Install, nil
		case "remove", "uninstall", "purge":
			return Remove, nil
		case "update":
			return Update, nil
		case "upgrade", "full-upgrade", "dist-upgrade":
			return Upgrade, nil
		case "search":
			return Search, nil
		case "show", "info":
			return Info, nil
		case "list":
			return List, nil
		case "clean", "autoclean":
			return Clean, nil
		case "autoremove":
			return AutoRemove, nil
		}
	case platform.Yum, platform.Dnf:
		switch t {
		case "install":
			return Install, nil
		case "remove", "erase":
			return Remove, nil
		case "check-update":
			return Update, nil
		case "update", "upgrade":
			return Upgrade, nil
		case "search":
			return Search, nil
		case "info":
			return Info, nil
		case "list":
			return List, nil
		case "clean":
			return Clean, nil
		case "autoremove":
			return AutoRemove, nil
		}
	case platform.Pacman:
		// Flag clusters: -S install, -R remove, -Sy update, -Syu upgrade,
		// -Ss search, -Si/-Qi info, -Q list, -Sc clean, -Rs autoremove-ish.
		switch t {
		case "-syu":
			return Upgrade, nil
		case "-sy":
			return Update, nil
		case "-s":
			return Install, nil
		case "-rs", "-r":
			return Remove, nil
		case "-ss":
			return Search, nil
		case "-si", "-qi":
			return Info, nil
		case "-q":
			return List, nil
		case "-sc", "-scc":
			return Clean, nil
		}
	case platform.Zypper:
		switch t {
		case "install", "in":
			return Install, nil
		case "remove", "rm":
			return Remove, nil
		case "refresh", "ref":
			return Update, nil
		case "update", "up":
			return Upgrade, nil
		case "search", "se":
			return Search, nil
		case "info", "if":
			return Info, nil
		case "packages":
			return List, nil
		case "clean":
			return Clean, nil
		}
	case platform.Apk:
		switch t {
		case "add":
			return Install, nil
		case "del":
			return Remove, nil
		case "update":
			return Update, nil
		case "upgrade":
			return Upgrade, nil
		case "search":
			return Search, nil
		case "info":
			return Info, nil
		case "list":
			return List, nil
		case "cache":
			return Clean, nil
		}
	case platform.Emerge:
		switch t {
		case "-av", "-a":
			return Install, nil
		case "--unmerge", "-c":
			return Remove, nil
		case "--sync":
			return Update, nil
		case "--update", "-u":
			return Upgrade, nil
		case "--search", "-s":
			return Search, nil
		case "--info":
			return Info, nil
		case "--depclean":
			return Clean, nil
		}
	case platform.Xbps:
		switch t {
		case "-su":
			return Upgrade, nil
		case "-s":
			return Install, nil
		case "-rs":
			return Search, nil
		case "-r":
			return Info, nil
		case "-l":
			return List, nil
		case "-o":
			return Clean, nil
		}
	case platform.Nix:
		switch t {
		case "-i", "-ia":
			return Install, nil
		case "-e":
			return Remove, nil
		case "-u", "-ua":
			return Upgrade, nil
		case "-qa":
			return List, nil
		}
		if strings.HasPrefix(t, "search") {
			return Search, nil
		}
	}

	return 0, fmt.Errorf("%w: '%s'", ErrUnsupportedOperation, t)
}
