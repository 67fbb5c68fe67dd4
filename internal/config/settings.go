package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/muurk/clipbridge/internal/urls"
)

const (
	appName    = "clipbridge"
	configFile = "config.yaml"

	// CurrentVersion is the config file schema version this build understands.
	CurrentVersion = 1
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Settings represents the entire user configuration file.
type Settings struct {
	Version int `yaml:"version"`

	// JoinURL is encoded in the Connect screen's code. A second device that
	// scans it lands where it can open clipbridge.
	JoinURL string `yaml:"join_url,omitempty"`

	// DataDir holds the persisted Document. Empty means <config dir>/data.
	DataDir string `yaml:"data_dir,omitempty"`

	// DownloadDir receives clipboard-content.txt. Empty means the user's
	// Downloads folder, or the working directory if that doesn't exist.
	DownloadDir string `yaml:"download_dir,omitempty"`
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		JoinURL: urls.JoinDefault,
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/clipbridge or $HOME/.config/clipbridge
//   - macOS: $HOME/.config/clipbridge (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\clipbridge
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the settings file at path. An empty path means GetConfigPath().
// If the file doesn't exist, default settings are returned.
func Load(path string) (*Settings, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := NewSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if settings.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", settings.Version, CurrentVersion)
	}

	if settings.JoinURL == "" {
		settings.JoinURL = urls.JoinDefault
	}

	return settings, nil
}

// Save writes the settings to path (GetConfigPath() when empty).
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# clipbridge configuration file
#
# join_url:     address encoded in the Connect screen's code
# data_dir:     where the Document is persisted between runs
# download_dir: where clipboard-content.txt is written
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// ResolveDataDir returns the directory the Document store lives in,
// with "~" expanded.
func (s *Settings) ResolveDataDir() (string, error) {
	if s.DataDir != "" {
		return homedir.Expand(s.DataDir)
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "data"), nil
}

// ResolveDownloadDir returns the directory downloads are written to,
// with "~" expanded.
func (s *Settings) ResolveDownloadDir() (string, error) {
	if s.DownloadDir != "" {
		return homedir.Expand(s.DownloadDir)
	}

	home, err := homedir.Dir()
	if err == nil {
		downloads := filepath.Join(home, "Downloads")
		if info, statErr := os.Stat(downloads); statErr == nil && info.IsDir() {
			return downloads, nil
		}
	}

	return os.Getwd()
}
