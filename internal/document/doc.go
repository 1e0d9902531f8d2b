// Package document parses a markdown source file into an immutable Document:
// a front-matter header plus an ordered sequence of typed blocks. The block
// set is intentionally closed (heading, paragraph, list, table, code) so the
// renderer can match exhaustively.
package document
