// Package analyze is the front-end of the builder generator.
//
// It uses golang.org/x/tools/go/packages to load syntax trees and extracts
// the records to build: struct types marked with a //builder:generate
// directive (or named in the configuration), each with its ordered fields,
// their written type shapes and their raw struct tag annotations.
//
// The extraction is purely syntactic; no type checking is performed.
//
// Key types:
//   - Package: a loaded package and the records found in it
//   - Record: a struct type to generate a builder for
//   - Field: one named field with its type shape and raw annotations
package analyze
