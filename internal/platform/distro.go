package platform

import "strings"

// Distro identifies a Linux distribution family for the purpose of choosing
// a package manager. Derivatives normalize to their parent (Ubuntu and Mint
// to Debian, Manjaro to Arch, and so on).
type Distro string

const (
	Debian   Distro = "Debian"
	RedHat   Distro = "RedHat"
	Fedora   Distro = "Fedora"
	Arch     Distro = "Arch"
	OpenSUSE Distro = "openSUSE"
	Alpine   Distro = "Alpine"
	Gentoo   Distro = "Gentoo"
	Void     Distro = "Void"
	NixOS    Distro = "NixOS"
	// GenericLinux is the fallback when the distribution cannot be
	// identified or has no dedicated package manager mapping.
	GenericLinux Distro = "Generic"
)

// String returns the display name of the distribution family.
func (d Distro) String() string {
	return string(d)
}

// PackageManager returns the native package manager of the distribution.
func (d Distro) PackageManager() PackageManager {
	switch d {
	case Debian:
		return Apt
	case RedHat:
		return Yum
	case Fedora:
		return Dnf
	case Arch:
		return Pacman
	case OpenSUSE:
		return Zypper
	case Alpine:
		return Apk
	case Gentoo:
		return Emerge
	case Void:
		return Xbps
	case NixOS:
		return Nix
	default:
		return GenericPM
	}
}

// distroAliases maps lowercase spellings accepted by ParseDistro.
var distroAliases = map[string]Distro{
	"debian":   Debian,
	"redhat":   RedHat,
	"rhel":     RedHat,
	"red hat":  RedHat,
	"fedora":   Fedora,
	"arch":     Arch,
	"archlinux": Arch,
	"opensuse": OpenSUSE,
	"suse":     OpenSUSE,
	"alpine":   Alpine,
	"gentoo":   Gentoo,
	"void":     Void,
	"nixos":    NixOS,
	"nix":      NixOS,
	"generic":  GenericLinux,
	"linux":    GenericLinux,
}

// ParseDistro resolves a case-insensitive distribution name or alias.
func ParseDistro(name string) (Distro, bool) {
	d, ok := distroAliases[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// PackageManager identifies a package manager whose invocations cmdx can
// translate. The string value is the short name used on the command line,
// which is not always the executable name; see CommandName.
type PackageManager string

const (
	Apt       PackageManager = "apt"
	Yum       PackageManager = "yum"
	Dnf       PackageManager = "dnf"
	Pacman    PackageManager = "pacman"
	Zypper    PackageManager = "zypper"
	Apk       PackageManager = "apk"
	Emerge    PackageManager = "emerge"
	Xbps      PackageManager = "xbps"
	Nix       PackageManager = "nix"
	GenericPM PackageManager = "generic"
)

// String returns the short name of the package manager.
func (p PackageManager) String() string {
	return string(p)
}

// CommandName returns the executable invoked for the package manager. For
// most managers this equals the short name; xbps and nix differ.
func (p PackageManager) CommandName() string {
	switch p {
	case Xbps:
		return "xbps-install"
	case Nix:
		return "nix-env"
	case GenericPM:
		return "package-manager"
	default:
		return string(p)
	}
}

// pmAliases maps lowercase spellings accepted by ParsePackageManager,
// including the split xbps executables and apt frontends.
var pmAliases = map[string]PackageManager{
	"apt":          Apt,
	"apt-get":      Apt,
	"aptitude":     Apt,
	"yum":          Yum,
	"dnf":          Dnf,
	"pacman":       Pacman,
	"zypper":       Zypper,
	"apk":          Apk,
	"emerge":       Emerge,
	"xbps":         Xbps,
	"xbps-install": Xbps,
	"xbps-remove":  Xbps,
	"xbps-query":   Xbps,
	"nix":          Nix,
	"nix-env":      Nix,
}

// ParsePackageManager resolves a case-insensitive package manager name or
// alias ("apt-get", "xbps-remove", "nix-env", ...).
func ParsePackageManager(name string) (PackageManager, bool) {
	p, ok := pmAliases[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// AllPackageManagers returns every concrete package manager, excluding the
// generic fallback.
func AllPackageManagers() []PackageManager {
	return []PackageManager{Apt, Yum, Dnf, Pacman, Zypper, Apk, Emerge, Xbps, Nix}
}
