package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/clipbridge/internal/actions"
	"github.com/muurk/clipbridge/internal/config"
	"github.com/muurk/clipbridge/internal/qr"
	"github.com/muurk/clipbridge/internal/ui"
)

// Command flags
var (
	showStats   bool
	downloadDir string
	clearYes    bool
	qrOut       string
	qrSize      int
	joinOut     string
	configForce bool
)

var errEmpty = errors.New("the document is empty (use 'clipbridge set' or the editor first)")

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(smsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(configCmd)
}

// showCmd prints the Document
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the document",
	Long: `Print the stored document to stdout exactly as saved.

With --stats, print its length against the code and message ceiling
instead.`,
	Example: `  # Pipe the document somewhere
  clipbridge show | wc -c

  # How close is it to the limit?
  clipbridge show --stats`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showStats, "stats", false, "Show length and capacity instead of the text")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if showStats {
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintCapacity(s.state.Len(), qr.MaxPayload)
		return nil
	}

	text := s.state.Text()
	if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
		return err
	}

	// Keep the shell prompt off the last line
	if f, ok := cmd.OutOrStdout().(*os.File); ok && ui.IsTerminal(f) && text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(f)
	}
	return nil
}

// setCmd replaces the Document
var setCmd = &cobra.Command{
	Use:   "set [text...]",
	Short: "Replace the document",
	Long: `Replace the stored document with the given text.

Arguments are joined with single spaces. With no arguments the text is
read from stdin, byte for byte.`,
	Example: `  clipbridge set "meeting notes"
  pbpaste | clipbridge set`,
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	s.state.SetText(text)

	p := ui.NewPrinter(cmd.OutOrStdout())
	details := []ui.Param{{Key: "Length", Value: strconv.Itoa(s.state.Len()) + " chars"}}
	if !s.state.FitsCode() {
		p.PrintWarning("Document saved, too long for a code or message", details)
		return nil
	}
	p.PrintSuccess("Document saved", details)
	return nil
}

// copyCmd writes the Document to the system clipboard
var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the document to the system clipboard",
	Args:  cobra.NoArgs,
	RunE:  runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if err := actions.NewCopier().Copy(s.state.Text()); err != nil {
		return actionError(cmd, "Copy", err, []string{
			"On Linux, install xclip, xsel or wl-clipboard",
			"Use 'clipbridge download' to save the text to a file instead",
		})
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Copied", []ui.Param{
		{Key: "Length", Value: strconv.Itoa(s.state.Len()) + " chars"},
	})
	return nil
}

// downloadCmd saves the Document as clipboard-content.txt
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Save the document as " + actions.DownloadFileName,
	Long: `Write the document to ` + actions.DownloadFileName + `.

The file goes to --dir, else download_dir from the config file, else
~/Downloads if it exists, else the current directory. An existing file
is replaced.`,
	Example: `  clipbridge download
  clipbridge download --dir ~/Desktop`,
	Args: cobra.NoArgs,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadDir, "dir", "", "Directory to write to")
}

func runDownload(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	dl, err := s.downloader(downloadDir)
	if err != nil {
		return err
	}

	path, err := dl.Save(s.state.Text())
	if err != nil {
		return actionError(cmd, "Download", err, []string{
			"Check that " + dl.Dir + " exists and is writable",
			"Pick another directory with --dir",
		})
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Saved", []ui.Param{
		{Key: "Path", Value: path},
		{Key: "Length", Value: strconv.Itoa(s.state.Len()) + " chars"},
	})
	return nil
}

// smsCmd opens the messaging app with the Document as the body
var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Open the messaging app with the document as the message",
	Long: `Open an sms: link pre-filled with the document.

Documents longer than 2000 characters are refused; use 'clipbridge qr'
or 'clipbridge copy' for those.`,
	Args: cobra.NoArgs,
	RunE: runSMS,
}

func runSMS(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if err := actions.NewMessenger().Send(s.state.Text()); err != nil {
		return actionError(cmd, "SMS", err, []string{
			"A handler for sms: links must be registered with the OS",
		})
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Opened the messaging app", []ui.Param{
		{Key: "Length", Value: strconv.Itoa(s.state.Len()) + " chars"},
	})
	return nil
}

// clearCmd empties the Document
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the document",
	Long:  `Empty the stored document. Asks for confirmation unless --yes is given.`,
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Don't ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if s.state.IsEmpty() {
		p.Println(ui.HeaderCommandStyle.Render("The document is already empty."))
		return nil
	}

	if !clearYes {
		ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			"CLEAR DOCUMENT",
			[]string{
				fmt.Sprintf("%d characters will be removed", s.state.Len()),
				"This cannot be undone",
			},
			"Are you sure you want to clear the clipboard?",
		)
		if !ok {
			return nil
		}
	}

	s.state.Clear()
	p.PrintSuccess("Cleared", nil)
	return nil
}

// qrCmd renders the transfer code for the Document
var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Show the document as a transfer code",
	Long: `Render the document as a QR code for another device's camera.

The code is printed to the terminal, or written as a PNG with --out.
Documents longer than 2000 characters can't be encoded.`,
	Example: `  clipbridge qr
  clipbridge qr --out transfer.png --size 400`,
	Args: cobra.NoArgs,
	RunE: runQR,
}

func init() {
	qrCmd.Flags().StringVarP(&qrOut, "out", "o", "", "Write a PNG to this file instead of printing")
	qrCmd.Flags().IntVar(&qrSize, "size", qr.TransferSize, "PNG size in pixels")
}

func runQR(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	text := s.state.Text()
	if text == "" {
		return errEmpty
	}
	caption := fmt.Sprintf("%d chars", s.state.Len())
	err = qr.ErrTooLong
	if qr.Fits(text) {
		err = writeCode(cmd, text, qrSize, qrOut, caption)
	}
	if errors.Is(err, qr.ErrTooLong) {
		ui.NewPrinter(cmd.OutOrStdout()).PrintWarning("Text too long for QR Code", []ui.Param{
			{Key: "Length", Value: strconv.Itoa(s.state.Len()) + " chars"},
			{Key: "Limit", Value: strconv.Itoa(qr.MaxPayload) + " chars"},
			{Key: "Tip", Value: "Use 'clipbridge download' instead"},
		})
		return fmt.Errorf("document is %d characters (%d bytes), too long for a QR code", s.state.Len(), len(text))
	}
	return err
}

// joinCmd renders the join code
var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Show the code that opens clipbridge on a second device",
	Long: `Render join_url from the config file as a QR code. Scan it with the
second device to get clipbridge there.`,
	Args: cobra.NoArgs,
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().StringVarP(&joinOut, "out", "o", "", "Write a PNG to this file instead of printing")
}

func runJoin(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return writeCode(cmd, settings.JoinURL, qr.JoinSize, joinOut, settings.JoinURL)
}

// writeCode prints data as a terminal code, or saves a PNG when out is set.
func writeCode(cmd *cobra.Command, data string, size int, out, caption string) error {
	code, err := qr.Render(data, size)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())

	if out == "" {
		p.PrintCode(code.Terminal(), caption)
		return nil
	}

	png, err := code.PNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, png, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	bounds := code.Image().Bounds()
	p.PrintSuccess("Code written", []ui.Param{
		{Key: "File", Value: out},
		{Key: "Size", Value: fmt.Sprintf("%dx%d px", bounds.Dx(), bounds.Dy())},
		{Key: "QR version", Value: strconv.Itoa(code.Version())},
	})
	return nil
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.NewSettings().Save(path); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config written", []ui.Param{{Key: "Path", Value: path}})
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// actionError prints a failure box for err and returns a short error for
// the exit status. Oversize errors print the bilingual warning instead.
func actionError(cmd *cobra.Command, title string, err error, tips []string) error {
	if errors.Is(err, actions.ErrEmptyDocument) {
		return errEmpty
	}

	p := ui.NewPrinter(cmd.ErrOrStderr())
	if actions.IsOversize(err) {
		p.PrintWarning("Too long / 內容過長", []ui.Param{{Key: "Message", Value: actions.OversizeMessage}})
		return fmt.Errorf("%s refused: document too long", strings.ToLower(title))
	}

	p.PrintError(title, err, tips)
	return fmt.Errorf("%s failed: %w", strings.ToLower(title), err)
}
