// Package ui renders the non-interactive output of the clipbridge CLI.
//
// Subcommands such as show, download and qr print once and exit. This
// package gives them a consistent look with lipgloss boxes:
//
//   - Header: command banner with title and parameters
//   - Result: success, failure or warning box with key/value details
//   - Capacity: Document length against the code ceiling
//   - Confirm: y/N prompt before a destructive action
//
// Printer ties these together for a given writer:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Download", "clipbridge download", []ui.Param{{"Dir", dir}})
//	p.PrintSuccess("Saved", []ui.Param{{"Path", path}})
//
// Logging is silent unless CLIPBRIDGE_LOG_LEVEL is set, so these boxes are
// the only thing a user sees on a normal run.
package ui
