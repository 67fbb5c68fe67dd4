// Clipbridge moves a block of text between two devices with scannable codes.
//
// It keeps a single Document on disk and offers an editor with Copy,
// Download, SMS, Clear and a transfer code the other device's camera can
// read. No network backend is involved.
//
// Usage:
//
//	clipbridge [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'clipbridge --help' for available commands.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/actions"
	"github.com/muurk/clipbridge/internal/app"
	"github.com/muurk/clipbridge/internal/config"
	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/store"
	"github.com/muurk/clipbridge/internal/tui"
	"github.com/muurk/clipbridge/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	dataDir    string
	logLevel   string
	ephemeral  bool
)

var rootCmd = &cobra.Command{
	Use:   "clipbridge",
	Short: "Move text between devices with scannable codes",
	Long: `Clipboard Bridge keeps one block of text and hands it to another device
through a scannable code, the system clipboard, a text file or an SMS.

The Connect screen shows a code that opens clipbridge on a second device.
The editor then turns your text into a transfer code for that device's
camera. Nothing is sent over the network.

If no command is specified, the interactive editor will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory the document is stored in (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the document in memory only")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Line("clipbridge"))
	},
}

// setupLogging initializes logging from --log-level or CLIPBRIDGE_LOG_LEVEL.
func setupLogging(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	logging.Debug("Starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("version", version.Full()),
	)
	return nil
}

// session is what every command works on: settings plus the Document.
type session struct {
	settings *config.Settings
	store    store.Store
	state    *app.State
}

func openSession() (*session, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		settings.DataDir = dataDir
	}

	var st store.Store
	if ephemeral {
		st = store.NewMemory("")
	} else {
		dir, err := settings.ResolveDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		disk, err := store.OpenDisk(dir)
		if err != nil {
			return nil, err
		}
		logging.Debug("Opened document store", zap.String("path", disk.BasePath()))
		st = disk
	}

	return &session{
		settings: settings,
		store:    st,
		state:    app.NewState(st),
	}, nil
}

// downloader returns a Downloader for dir, or the configured download
// directory when dir is empty.
func (s *session) downloader(dir string) (*actions.Downloader, error) {
	if dir == "" {
		var err error
		dir, err = s.settings.ResolveDownloadDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve download directory: %w", err)
		}
	}
	return actions.NewDownloader(dir), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	dl, err := s.downloader("")
	if err != nil {
		return err
	}

	model := tui.NewModel(s.state, s.settings.JoinURL, tui.Actions{
		Copier:     actions.NewCopier(),
		Downloader: dl,
		Messenger:  actions.NewMessenger(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
