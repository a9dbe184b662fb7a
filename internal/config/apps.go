package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kiosk/internal/core"
	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

// appBody is an entry keyed by name in the mapping form.
type appBody struct {
	Run  string `json:"run" yaml:"run"`
	Icon string `json:"icon" yaml:"icon"`
}

// appsTOML is the TOML shape: a list of [[app]] tables.
type appsTOML struct {
	App []core.AppEntry `toml:"app"`
}

// LoadApps reads the application list from path.
//
// The format is chosen by extension: .toml uses [[app]] tables, .json and
// .yaml/.yml accept either an array of {name, run, icon} objects or a
// mapping of name to {run, icon}. Mapping order is document order.
func LoadApps(path string) ([]core.AppEntry, error) {
	if path == "" {
		return nil, &Error{Op: "read", Err: errors.New("no apps file configured")}
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, &Error{Path: path, Op: "read", Err: err}
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, &Error{Path: expanded, Op: "read", Err: err}
	}

	entries, err := DecodeApps(filepath.Ext(expanded), data)
	if err != nil {
		return nil, &Error{Path: expanded, Op: "parse", Err: err}
	}
	return entries, nil
}

// DecodeApps decodes an apps document. ext selects the format and defaults
// to YAML when unrecognised.
func DecodeApps(ext string, data []byte) ([]core.AppEntry, error) {
	var (
		entries []core.AppEntry
		err     error
	)
	switch strings.ToLower(ext) {
	case ".toml":
		var doc appsTOML
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		entries = doc.App
	case ".json":
		entries, err = decodeAppsJSON(data)
	default:
		entries, err = decodeAppsYAML(data)
	}
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		if e.Command == "" {
			return nil, fmt.Errorf("entry %d (%q): missing run command", i, e.ID)
		}
	}
	return entries, nil
}

func decodeAppsYAML(data []byte) ([]core.AppEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil // empty document
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var entries []core.AppEntry
		if err := root.Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil

	case yaml.MappingNode:
		entries := make([]core.AppEntry, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			var body appBody
			if err := root.Content[i+1].Decode(&body); err != nil {
				return nil, fmt.Errorf("entry %q: %w", root.Content[i].Value, err)
			}
			entries = append(entries, core.AppEntry{
				ID:      root.Content[i].Value,
				Command: body.Run,
				Icon:    body.Icon,
			})
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("line %d: expected a list or mapping of apps", root.Line)
	}
}

func decodeAppsJSON(data []byte) ([]core.AppEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var entries []core.AppEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	case '{':
		return decodeAppsJSONObject(trimmed)
	default:
		return nil, errors.New("expected a JSON array or object of apps")
	}
}

// decodeAppsJSONObject walks the object token by token so entries keep
// their document order.
func decodeAppsJSONObject(data []byte) ([]core.AppEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // '{'
		return nil, err
	}

	var entries []core.AppEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var body appBody
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, core.AppEntry{ID: name, Command: body.Run, Icon: body.Icon})
	}
	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) { // '}'
		return nil, err
	}
	return entries, nil
}
