// Package config provides user configuration management for clipbridge.
//
// This package manages a YAML-based configuration file that stores the few
// user preferences clipbridge has: the join address shown on the Connect
// screen, where the Document is persisted, and where downloads are written.
// The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/clipbridge/config.yaml or $HOME/.config/clipbridge/config.yaml
//   - macOS: $HOME/.config/clipbridge/config.yaml
//   - Windows: %LOCALAPPDATA%\clipbridge\config.yaml
//
// A missing file is not an error; defaults are used.
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.JoinURL = "https://example.com/clipbridge"
//	if err := settings.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// Paths in the file may start with "~", which is expanded to the user's
// home directory.
package config
