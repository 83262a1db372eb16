// Package timecode parses subtitle time ranges into comparable millisecond
// intervals and computes temporal overlap.
//
// Both common textual conventions are accepted: the SRT form
// "00:00:01,000 --> 00:00:03,000" (comma decimal separator) and the ASS form
// "0:00:01.00 --> 0:00:03.00" (dot separator, two fraction digits). Fractions
// are normalized to exactly three digits, so ".5" means 500 ms and ".12"
// means 120 ms.
package timecode
