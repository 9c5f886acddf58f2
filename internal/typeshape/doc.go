// Package typeshape provides a purely syntactic model of Go field types.
//
// A Type is built from the go/ast expression written in the source; no alias
// resolution or type checking takes place. The package answers one question
// for the rest of the pipeline: is a type written as a given single-argument
// wrapper (pointer, slice or a named generic such as opt.Option[T]), and if so
// what is the wrapped type.
//
// Key functions:
//   - FromExpr: converts an ast.Expr into a Type
//   - Unwrap: matches a wrapper shape and extracts its argument
//   - Type.String: renders Go syntax for the emitter and diagnostics
package typeshape
