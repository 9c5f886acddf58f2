// Package match provides identifier normalization and edit distance helpers.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - IsNearMiss: decides whether a misspelled keyword deserves a suggestion
//   - LowerCamel: derives local variable names from field names
package match
