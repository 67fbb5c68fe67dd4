// Package actions wraps the platform capabilities behind the editor's
// buttons: copying to the system clipboard, saving the Document as a text
// file, and handing it to the device's messaging composer.
//
// Every action is a no-op returning ErrEmptyDocument when the Document is
// empty. Failures use the package's Error type:
//
//   - ErrTypeOversize: the Document exceeds qr.MaxPayload for a code-based
//     action. Blocking and user-visible, with a suggested alternative.
//   - ErrTypeEmpty: nothing to act on.
//   - ErrTypePlatform: a best-effort platform call failed. Callers may show
//     a non-blocking notice but never treat it as fatal.
//
// The Document is never modified by this package.
package actions
