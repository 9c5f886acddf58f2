// Package gen renders builder artifacts as Go source.
//
// Generation uses text/template and golang.org/x/tools/imports for
// readable, gofmt-clean output. Every package with records gets one file
// holding, per record:
//   - the builder type, one storage slot per field
//   - the constructor, leaving every slot at its default
//   - the chaining methods: setters, bulk setters and accumulators
//   - the finalize method, which moves every slot into the record
package gen
