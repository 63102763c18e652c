package platform

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// DetectOS identifies the operating system cmdx is running on from
// runtime.GOOS. Android is distinguished from plain Linux by probing for
// /system/build.prop.
func DetectOS() OS {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		if isAndroid() {
			return Android
		}
		return Linux
	case "freebsd":
		return FreeBSD
	case "openbsd":
		return OpenBSD
	case "netbsd":
		return NetBSD
	case "solaris", "illumos":
		return Solaris
	case "android":
		return Android
	case "ios":
		return IOS
	default:
		return UnknownOS
	}
}

func isAndroid() bool {
	_, err := os.Stat("/system/build.prop")
	return err == nil
}

// DetectDistro identifies the local Linux distribution family using
// gopsutil. On non-Linux hosts and whenever detection fails it returns
// GenericLinux; the only hard failure is context cancellation.
func DetectDistro(ctx context.Context) (Distro, error) {
	if DetectOS() != Linux {
		return GenericLinux, nil
	}

	id, family, _, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return GenericLinux, fmt.Errorf("distro detection cancelled: %w", ctx.Err())
		}
		// Graceful fallback: translation still works against the
		// generic manager when /etc/os-release is unreadable.
		return GenericLinux, nil
	}

	return normalizeDistro(id, family), nil
}

// DetectPackageManager returns the native package manager of the local
// host, as derived from DetectDistro.
func DetectPackageManager(ctx context.Context) (PackageManager, error) {
	d, err := DetectDistro(ctx)
	if err != nil {
		return GenericPM, err
	}
	return d.PackageManager(), nil
}
