package pkgmgr

import (
	"errors"
	"strings"
	"testing"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

func mustTranslate(t *testing.T, input string, from, to platform.PackageManager) *Result {
	t.Helper()
	result, err := Translate(input, from, to)
	if err != nil {
		t.Fatalf("Translate(%q, %v, %v) error = %v", input, from, to, err)
	}
	return result
}

func TestTranslate_AptToDnfInstall(t *testing.T) {
	result := mustTranslate(t, "apt install vim", platform.Apt, platform.Dnf)
	if result.Command != "dnf install vim" {
		t.Errorf("command = %q, want dnf install vim", result.Command)
	}
	if result.Original != "apt install vim" {
		t.Errorf("original = %q, want apt install vim", result.Original)
	}
}

func TestTranslate_DnfToAptRemove(t *testing.T) {
	result := mustTranslate(t, "dnf remove vim", platform.Dnf, platform.Apt)
	if result.Command != "apt remove vim" {
		t.Errorf("command = %q, want apt remove vim", result.Command)
	}
}

func TestTranslate_AptToPacmanInstall(t *testing.T) {
	result := mustTranslate(t, "apt install vim", platform.Apt, platform.Pacman)
	if result.Command != "pacman -S vim" {
		t.Errorf("command = %q, want pacman -S vim", result.Command)
	}
}

func TestTranslate_PacmanToAptSearch(t *testing.T) {
	result := mustTranslate(t, "pacman -Ss vim", platform.Pacman, platform.Apt)
	if result.Command != "apt search vim" {
		t.Errorf("command = %q, want apt search vim", result.Command)
	}
}

func TestTranslate_SudoPrefixPreserved(t *testing.T) {
	result := mustTranslate(t, "sudo apt install vim", platform.Apt, platform.Dnf)
	if result.Command != "sudo dnf install vim" {
		t.Errorf("command = %q, want sudo dnf install vim", result.Command)
	}
	if !result.RequiresSudo {
		t.Error("RequiresSudo = false, want true")
	}
}

func TestTranslate_SudoDroppedWhenTargetNeedsNone(t *testing.T) {
	result := mustTranslate(t, "sudo apt install vim", platform.Apt, platform.Nix)
	if result.Command != "nix-env -i vim" {
		t.Errorf("command = %q, want nix-env -i vim", result.Command)
	}
	if result.RequiresSudo {
		t.Error("RequiresSudo = true, want false")
	}
}

func TestTranslateAuto_DetectsSource(t *testing.T) {
	result, err := TranslateAuto("apt install vim", platform.Dnf)
	if err != nil {
		t.Fatalf("TranslateAuto error = %v", err)
	}
	if result.Command != "dnf install vim" {
		t.Errorf("command = %q, want dnf install vim", result.Command)
	}
	if result.From != platform.Apt {
		t.Errorf("from = %v, want apt", result.From)
	}
}

func TestTranslate_SameManagerPassthrough(t *testing.T) {
	result := mustTranslate(t, "apt install vim", platform.Apt, platform.Apt)
	if result.Command != "apt install vim" {
		t.Errorf("command = %q, want apt install vim", result.Command)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestTranslate_AptUpdateToZypper(t *testing.T) {
	result := mustTranslate(t, "apt update", platform.Apt, platform.Zypper)
	if result.Command != "zypper refresh" {
		t.Errorf("command = %q, want zypper refresh", result.Command)
	}
}

func TestTranslate_YumToApk(t *testing.T) {
	result := mustTranslate(t, "yum install nginx", platform.Yum, platform.Apk)
	if result.Command != "apk add nginx" {
		t.Errorf("command = %q, want apk add nginx", result.Command)
	}
}

func TestTranslate_ManagerMismatchWarns(t *testing.T) {
	result := mustTranslate(t, "apt install vim", platform.Dnf, platform.Pacman)
	want := "Command appears to be for apt but was specified as dnf"
	found := false
	for _, w := range result.Warnings {
		if w == want {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want %q", result.Warnings, want)
	}
}

func TestTranslate_YesFlag(t *testing.T) {
	tests := []struct {
		input string
		from  platform.PackageManager
		to    platform.PackageManager
		want  string
	}{
		{"apt install -y vim", platform.Apt, platform.Dnf, "dnf install -y vim"},
		{"apt install -y vim", platform.Apt, platform.Pacman, "pacman -S --noconfirm vim"},
		{"apt install -q vim", platform.Apt, platform.Dnf, "dnf install -q vim"},
		{"apt install -y vim", platform.Apt, platform.Zypper, "zypper install -y vim"},
		{"pacman -S --noconfirm vim", platform.Pacman, platform.Apt, "apt install -y vim"},
		{"dnf install -y vim", platform.Dnf, platform.Apt, "apt install -y vim"},
		{"apt install -y -q vim", platform.Apt, platform.Dnf, "dnf install -y -q vim"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, tc.from, tc.to)
		if result.Command != tc.want {
			t.Errorf("Translate(%q, %v, %v) = %q, want %q", tc.input, tc.from, tc.to, result.Command, tc.want)
		}
	}
}

func TestTranslate_PurgeFlagToPacman(t *testing.T) {
	result := mustTranslate(t, "apt remove --purge vim", platform.Apt, platform.Pacman)
	if result.Command != "pacman -R -n vim" {
		t.Errorf("command = %q, want pacman -R -n vim", result.Command)
	}
}

func TestTranslate_DroppedFlag(t *testing.T) {
	result := mustTranslate(t, "apt search --names-only vim", platform.Apt, platform.Pacman)
	if result.Command != "pacman -Ss vim" {
		t.Errorf("command = %q, want pacman -Ss vim", result.Command)
	}
}

func TestTranslate_SudoWithFlags(t *testing.T) {
	result := mustTranslate(t, "sudo apt install -y vim", platform.Apt, platform.Dnf)
	if result.Command != "sudo dnf install -y vim" {
		t.Errorf("command = %q, want sudo dnf install -y vim", result.Command)
	}
}

func TestTranslate_UnmappedFlagWarns(t *testing.T) {
	result := mustTranslate(t, "apt install --some-unknown-flag vim", platform.Apt, platform.Dnf)
	if result.Command != "dnf install --some-unknown-flag vim" {
		t.Errorf("command = %q, want flag preserved", result.Command)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("warnings empty, want unmapped flag warning")
	}
	if !strings.Contains(result.Warnings[0], "--some-unknown-flag") {
		t.Errorf("warning = %q, want mention of the flag", result.Warnings[0])
	}
}

func TestTranslate_ValueFlagKeepsValue(t *testing.T) {
	result := mustTranslate(t, "apt install --no-install-recommends=true vim", platform.Apt, platform.Dnf)
	if !strings.Contains(result.Command, "--setopt=install_weak_deps=False=true") {
		t.Errorf("command = %q, want value carried through", result.Command)
	}
}

func TestTranslate_Errors(t *testing.T) {
	if _, err := Translate("", platform.Apt, platform.Dnf); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("empty input error = %v, want ErrEmptyCommand", err)
	}
	if _, err := TranslateAuto("", platform.Dnf); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("empty auto input error = %v, want ErrEmptyCommand", err)
	}
	if _, err := Translate("invalid-command install vim", platform.Apt, platform.Dnf); !errors.Is(err, ErrNotPackageManagerCommand) {
		t.Errorf("unknown manager error = %v, want ErrNotPackageManagerCommand", err)
	}
	if _, err := Translate("pacman -X vim", platform.Pacman, platform.Apt); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("bad pacman flag error = %v, want ErrUnsupportedOperation", err)
	}
	if _, err := Translate("apt", platform.Apt, platform.Dnf); !errors.Is(err, ErrNotPackageManagerCommand) {
		t.Errorf("manager without operation error = %v, want ErrNotPackageManagerCommand", err)
	}
}

func TestTranslate_AllOperationsAptToDnf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"apt install vim", "dnf install vim"},
		{"apt remove vim", "dnf remove vim"},
		{"apt update", "dnf check-update"},
		{"apt upgrade", "dnf upgrade"},
		{"apt search vim", "dnf search vim"},
		{"apt show vim", "dnf info vim"},
		{"apt list", "dnf list installed"},
		{"apt clean", "dnf clean all"},
		{"apt autoremove", "dnf autoremove"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Apt, platform.Dnf)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_ApkOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"apk add nginx", "apt install nginx"},
		{"apk del nginx", "apt remove nginx"},
		{"apk update", "apt update"},
		{"apk search nginx", "apt search nginx"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Apk, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_EmergeOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"emerge -a vim", "apt install vim"},
		{"emerge --unmerge vim", "apt remove vim"},
		{"emerge --sync", "apt update"},
		{"emerge --search vim", "apt search vim"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Emerge, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_XbpsOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"xbps-install -S vim", "apt install vim"},
		{"xbps-install -Su", "apt upgrade"},
		{"xbps-query -Rs vim", "apt search vim"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Xbps, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_NixOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"nix-env -i vim", "apt install vim"},
		{"nix-env -e vim", "apt remove vim"},
		{"nix-env -u", "apt upgrade"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Nix, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_ZypperOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zypper install vim", "apt install vim"},
		{"zypper remove vim", "apt remove vim"},
		{"zypper refresh", "apt update"},
		{"zypper update", "apt upgrade"},
		{"zypper search vim", "apt search vim"},
		{"zypper info vim", "apt show vim"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Zypper, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_PacmanOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pacman -S vim", "apt install vim"},
		{"pacman -R vim", "apt remove vim"},
		{"pacman -Sy", "apt update"},
		{"pacman -Syu", "apt upgrade"},
		{"pacman -Ss vim", "apt search vim"},
		{"pacman -Si vim", "apt show vim"},
		{"pacman -Q", "apt list --installed"},
		{"pacman -Sc", "apt clean"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Pacman, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_YumOperations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"yum install vim", "apt install vim"},
		{"yum remove vim", "apt remove vim"},
		{"yum check-update", "apt update"},
		{"yum update", "apt upgrade"},
		{"yum search vim", "apt search vim"},
		{"yum info vim", "apt show vim"},
	}
	for _, tc := range tests {
		result := mustTranslate(t, tc.input, platform.Yum, platform.Apt)
		if result.Command != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.input, result.Command, tc.want)
		}
	}
}

func TestTranslate_MultiplePackages(t *testing.T) {
	result := mustTranslate(t, "apt install vim nginx git", platform.Apt, platform.Dnf)
	if result.Command != "dnf install vim nginx git" {
		t.Errorf("command = %q, want dnf install vim nginx git", result.Command)
	}
}

func TestTranslate_MultiplePackagesWithFlags(t *testing.T) {
	result := mustTranslate(t, "apt install -y -q vim nginx", platform.Apt, platform.Pacman)
	if result.Command != "pacman -S --noconfirm -q vim nginx" {
		t.Errorf("command = %q, want pacman -S --noconfirm -q vim nginx", result.Command)
	}
}

func TestTranslate_NotesSurfaceAsWarnings(t *testing.T) {
	result := mustTranslate(t, "apt autoremove", platform.Apt, platform.Pacman)
	if result.Command != "pacman -Rs" {
		t.Errorf("command = %q, want pacman -Rs", result.Command)
	}
	want := "Removes package with unused dependencies"
	found := false
	for _, w := range result.Warnings {
		if w == want {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want %q", result.Warnings, want)
	}
}

func TestTranslate_AptGetAlias(t *testing.T) {
	result := mustTranslate(t, "apt-get install vim", platform.Apt, platform.Dnf)
	if result.Command != "dnf install vim" {
		t.Errorf("command = %q, want dnf install vim", result.Command)
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Install, "install"},
		{Remove, "remove"},
		{Update, "update"},
		{Upgrade, "upgrade"},
		{Search, "search"},
		{Info, "info"},
		{List, "list"},
		{Clean, "clean"},
		{AutoRemove, "autoremove"},
	}
	for _, tc := range tests {
		if got := tc.op.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.op), got, tc.want)
		}
	}
}

func TestResultString(t *testing.T) {
	result := mustTranslate(t, "apt install vim", platform.Apt, platform.Dnf)
	if result.String() != "dnf install vim" {
		t.Errorf("String() = %q, want dnf install vim", result.String())
	}
}
