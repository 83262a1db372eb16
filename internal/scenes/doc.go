// Package scenes maintains the ordered set of scene-break positions over a
// subtitle sequence and derives scene membership from it.
//
// A break at position p marks a boundary immediately after the line at p.
// Positions are 0-based indices into the live sequence, so deleting a line
// reindexes every break above it.
package scenes
