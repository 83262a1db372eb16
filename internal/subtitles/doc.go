// Package subtitles parses SRT and ASS subtitle files into ordered line
// records and aligns a secondary-language track to a primary track by
// temporal overlap.
//
// Parsing is best effort: malformed blocks and undersized dialogue rows are
// skipped rather than failing the file. Parsers pre-fill speaker names where
// the source format carries them (the ASS Name field, or a fullwidth
// parenthesized token in the text body) so annotation can start from a
// partially labeled sequence.
package subtitles
