// Package diagnostic provides located, human-readable reports of validation
// failures for the builder generator.
//
// Diagnostics are values, not Go errors: every stage of the pipeline returns
// the complete List it found so that a user can fix every problem of a
// record in a single edit cycle. CollectAll is the fan-in combinator that
// turns many independent fallible steps into one pass/fail outcome without
// losing any individual report.
package diagnostic
