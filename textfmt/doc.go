// Package textfmt reads and writes the problem-description text format: a
// stream of whitespace/comma-separated numeric tokens grouped into
// bracketed records, `#`-prefixed comment lines, and blank lines, encoded
// as UTF-8 or CP1250 and capped at 500 kB.
//
// Parsing is a small recursive-descent pass over a flat token stream of
// nested bracketed number lists. Decoding and tokenising happen up front,
// then each record's shape is checked while it is parsed; semantic
// validation is left to ingest.
package textfmt
