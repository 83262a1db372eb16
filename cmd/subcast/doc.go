// Package main hosts the subcast CLI entrypoint and command graph.
//
// The Cobra-based command tree loads subtitle files into persisted
// annotation sessions, surfaces the character registry and scene break
// operations, and renders exports. It centralizes configuration
// resolution, session locking, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
