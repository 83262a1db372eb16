// Package export renders an annotation session as JSON, CSV, or plain-text
// screenplay output. Character names are resolved to their canonical form
// and scene identifiers are derived from the session's break positions.
package export
