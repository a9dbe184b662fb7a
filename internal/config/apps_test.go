package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

func TestDecodeApps(t *testing.T) {
	want := []core.AppEntry{
		{ID: "Steam", Command: "~/bin/steam.sh", Icon: "~/icons/steam.png"},
		{ID: "Kodi", Command: "kodi", Icon: ""},
	}

	tests := []struct {
		name string
		ext  string
		data string
	}{
		{"json array", ".json", `[
	{"name": "Steam", "run": "~/bin/steam.sh", "icon": "~/icons/steam.png"},
	{"name": "Kodi", "run": "kodi"}
]`},
		{"json object keeps order", ".json", `{
	"Steam": {"run": "~/bin/steam.sh", "icon": "~/icons/steam.png"},
	"Kodi": {"run": "kodi"}
}`},
		{"yaml list", ".yaml", `
- name: Steam
  run: ~/bin/steam.sh
  icon: ~/icons/steam.png
- name: Kodi
  run: kodi
`},
		{"yaml mapping keeps order", ".yml", `
Steam:
  run: ~/bin/steam.sh
  icon: ~/icons/steam.png
Kodi:
  run: kodi
`},
		{"toml tables", ".toml", `
[[app]]
name = "Steam"
run = "~/bin/steam.sh"
icon = "~/icons/steam.png"

[[app]]
name = "Kodi"
run = "kodi"
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeApps(tc.ext, []byte(tc.data))
			if err != nil {
				t.Fatalf("DecodeApps: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d entries, expected %d: %+v", len(got), len(want), got)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDecodeAppsEmpty(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		got, err := DecodeApps(ext, nil)
		if err != nil {
			t.Errorf("DecodeApps(%s, empty) error = %v", ext, err)
		}
		if len(got) != 0 {
			t.Errorf("DecodeApps(%s, empty) = %+v, expected none", ext, got)
		}
	}
}

func TestDecodeAppsRejects(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{"missing run", ".json", `[{"name": "Broken"}]`},
		{"scalar document", ".yaml", `just a string`},
		{"json scalar", ".json", `42`},
		{"malformed json", ".json", `[{"name": }]`},
		{"malformed toml", ".toml", `[[app]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeApps(tc.ext, []byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadAppsExpandsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, "apps.json", `[{"name": "Shell", "run": "~/shell.sh"}]`)

	got, err := LoadApps("~/apps.json")
	if err != nil {
		t.Fatalf("LoadApps: %v", err)
	}
	if len(got) != 1 || got[0].ID != "Shell" {
		t.Fatalf("LoadApps = %+v", got)
	}
	// Commands are expanded at launch time, not at load time.
	if got[0].Command != "~/shell.sh" {
		t.Errorf("Command = %q, expected it unexpanded", got[0].Command)
	}
}

func TestLoadAppsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "apps.json", `[{"name": "x"}]`)

	tests := []struct {
		name string
		path string
		op   string
	}{
		{"unset", "", "read"},
		{"missing", filepath.Join(dir, "nope.json"), "read"},
		{"invalid", bad, "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadApps(tc.path)
			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("LoadApps error = %v, expected *Error", err)
			}
			if ce.Op != tc.op {
				t.Errorf("Op = %q, expected %q", ce.Op, tc.op)
			}
		})
	}
}
