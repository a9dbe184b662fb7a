package homedir

import (
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/scripts/kodi.sh", filepath.Join(home, "scripts", "kodi.sh")},
		{"absolute", "/usr/bin/kodi", "/usr/bin/kodi"},
		{"relative", "scripts/kodi.sh", "scripts/kodi.sh"},
		{"other user", "~bob/run.sh", "~bob/run.sh"},
		{"tilde in middle", "/opt/~/x", "/opt/~/x"},
		{"empty", "", ""},
		{"command line", "~/bin/open https://example.org", home + "/bin/open https://example.org"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Expand(tc.in)
			if err != nil {
				t.Fatalf("Expand(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("Expand(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestMustExpandFallsBack(t *testing.T) {
	t.Setenv("HOME", "")

	if got := MustExpand("~/x"); got != "~/x" {
		t.Errorf("MustExpand without HOME = %q, expected input unchanged", got)
	}
}
