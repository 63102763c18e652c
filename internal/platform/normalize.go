package platform

import "strings"

// distroIDMap maps os-release ID values to distribution families.
// Derivatives map to the parent whose package manager they ship.
var distroIDMap = map[string]Distro{
	"debian":        Debian,
	"ubuntu":        Debian,
	"linuxmint":     Debian,
	"pop":           Debian,
	"raspbian":      Debian,
	"kali":          Debian,
	"rhel":          RedHat,
	"centos":        RedHat,
	"rocky":         RedHat,
	"almalinux":     RedHat,
	"ol":            RedHat,
	"amzn":          RedHat,
	"fedora":        Fedora,
	"arch":          Arch,
	"archlinux":     Arch,
	"manjaro":       Arch,
	"endeavouros":   Arch,
	"opensuse":      OpenSUSE,
	"opensuse-leap": OpenSUSE,
	"opensuse-tumbleweed": OpenSUSE,
	"sles":          OpenSUSE,
	"alpine":        Alpine,
	"gentoo":        Gentoo,
	"void":          Void,
	"nixos":         NixOS,
}

// distroFamilyMap maps os-release ID_LIKE / gopsutil family strings to
// distribution families, used when the ID itself is unrecognized.
var distroFamilyMap = map[string]Distro{
	"debian":   Debian,
	"ubuntu":   Debian,
	"rhel":     RedHat,
	"fedora":   Fedora,
	"arch":     Arch,
	"suse":     OpenSUSE,
	"opensuse": OpenSUSE,
	"alpine":   Alpine,
	"gentoo":   Gentoo,
	"void":     Void,
	"nixos":    NixOS,
}

// normalizeDistro resolves a distribution ID, falling back to its family
// string, and finally to GenericLinux.
func normalizeDistro(id, family string) Distro {
	if d, ok := distroIDMap[strings.ToLower(strings.TrimSpace(id))]; ok {
		return d
	}
	if d, ok := distroFamilyMap[strings.ToLower(strings.TrimSpace(family))]; ok {
		return d
	}
	return GenericLinux
}
