// Package plan classifies record fields into builder construction policies.
//
// Resolution pipeline:
//  1. For each field of a record, in declaration order:
//     - Parse its builder annotations (each = "alias")
//     - With at least one alias, require a multi-valued container type → Multi
//     - Otherwise an optional wrapper type → Optional
//     - Otherwise → Mandatory
//  2. Collect the diagnostics of every field; the record resolves only when
//     no field failed.
//
// The result is a Record whose Fields are the closed set of variants
// Mandatory, Optional and Multi, consumed by the emitter.
package plan
