// Package session persists annotation sessions in a SQLite database keyed
// by subtitle filename. Each row carries the full session state plus its
// undo and redo stacks as JSON, so a command-line invocation can pick up
// exactly where the previous one stopped. The package also stores the
// cross-file global character list.
package session
