// Package characters maintains the registry of speakers over a subtitle
// sequence: canonical names, alias folding, derived line counts, and the
// user-controlled display order that drives hotkey assignment.
//
// The registry always contains exactly one "(Other)" entry pinned to the
// first position. It cannot be renamed, merged, moved, or deleted; the "0"
// hotkey is hardwired to it while 1-9 map to the first nine other entries in
// registry order.
package characters
