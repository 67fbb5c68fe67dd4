// Package store persists the single clipbridge Document between runs.
//
// The store holds exactly one value under the key "simple_clipboard_text".
// It is read once at startup and overwritten on every Document change, with
// no debouncing. Persistence is best effort: a failed read loads as an empty
// Document and a failed write is logged and otherwise ignored. The
// in-memory Document stays the source of truth.
//
// Two implementations are provided:
//   - Disk: backed by diskv, one file per key under the data directory
//   - Memory: process-local, used by tests and --ephemeral runs
package store
