package core

// AppEntry is one configured application. Entries are immutable after load
// and their order defines grid position.
type AppEntry struct {
	// ID names the entry. It is shown when the icon cannot be drawn.
	ID string `json:"name" yaml:"name" toml:"name"`

	// Command is the launch command. A leading "~" is expanded to the home
	// directory before it is handed to the process runner.
	Command string `json:"run" yaml:"run" toml:"run"`

	// Icon is the path to the tile image.
	Icon string `json:"icon" yaml:"icon" toml:"icon"`
}
