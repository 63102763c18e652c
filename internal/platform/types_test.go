package platform

import "testing"

func TestParseOS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  OS
		ok    bool
	}{
		{"canonical windows", "windows", Windows, true},
		{"win alias", "win", Windows, true},
		{"win32 alias", "win32", Windows, true},
		{"win64 alias", "win64", Windows, true},
		{"linux", "linux", Linux, true},
		{"gnu/linux alias", "gnu/linux", Linux, true},
		{"macos", "macos", MacOS, true},
		{"darwin alias", "darwin", MacOS, true},
		{"osx alias", "osx", MacOS, true},
		{"mac alias", "mac", MacOS, true},
		{"freebsd", "freebsd", FreeBSD, true},
		{"openbsd", "openbsd", OpenBSD, true},
		{"netbsd", "netbsd", NetBSD, true},
		{"solaris", "solaris", Solaris, true},
		{"sunos alias", "sunos", Solaris, true},
		{"android", "android", Android, true},
		{"ios", "ios", IOS, true},
		{"mixed case", "WiNdOwS", Windows, true},
		{"surrounding whitespace", "  linux  ", Linux, true},
		{"unknown name", "templeos", UnknownOS, false},
		{"empty string", "", UnknownOS, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOS(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseOS(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseOS(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOS_IsUnixLike(t *testing.T) {
	tests := []struct {
		os   OS
		want bool
	}{
		{Linux, true},
		{MacOS, true},
		{FreeBSD, true},
		{OpenBSD, true},
		{NetBSD, true},
		{Solaris, true},
		{Android, true},
		{Windows, false},
		{IOS, false},
		{UnknownOS, false},
	}

	for _, tt := range tests {
		if got := tt.os.IsUnixLike(); got != tt.want {
			t.Errorf("%v.IsUnixLike() = %v, want %v", tt.os, got, tt.want)
		}
	}
}

func TestOS_IsBSD(t *testing.T) {
	tests := []struct {
		os   OS
		want bool
	}{
		{FreeBSD, true},
		{OpenBSD, true},
		{NetBSD, true},
		{MacOS, true},
		{Linux, false},
		{Windows, false},
		{Solaris, false},
	}

	for _, tt := range tests {
		if got := tt.os.IsBSD(); got != tt.want {
			t.Errorf("%v.IsBSD() = %v, want %v", tt.os, got, tt.want)
		}
	}
}

func TestAllOS_ExcludesUnknown(t *testing.T) {
	for _, o := range AllOS() {
		if o == UnknownOS {
			t.Fatal("AllOS() should not include Unknown")
		}
		if !o.IsValid() {
			t.Errorf("AllOS() returned invalid OS %v", o)
		}
	}
	if len(AllOS()) != 9 {
		t.Errorf("AllOS() length = %d, want 9", len(AllOS()))
	}
}
