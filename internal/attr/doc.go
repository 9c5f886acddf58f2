// Package attr parses per-field builder annotations.
//
// Annotations are written as struct tags. Every tag key is a Raw annotation
// token; the ones whose key equals the builder keyword carry a small grammar:
//
//	`builder:"each=arg"`
//	`builder:"each=\"arg\", each=argument"`
//
// that is, zero or more comma separated entries of the form key = literal,
// where key must be the word each and the literal is a Go string literal or
// a bare identifier naming an accumulator method.
//
// The grammar is checked with go/scanner tokens against a fixed schema.
// Anything outside it is reported with a located diagnostic rather than
// ignored, and parsing never stops at the first problem.
package attr
