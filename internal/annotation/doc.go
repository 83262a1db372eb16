// Package annotation owns the mutable session aggregate: the subtitle
// sequence, character registry, scene breaks, and secondary-track linkage.
//
// Every user-driven mutation goes through a Store method that snapshots the
// whole state before changing it, so undo restores an exact value-equal
// prior state. Validation failures are rejected before the snapshot is
// pushed and leave both the state and the undo history untouched.
package annotation
