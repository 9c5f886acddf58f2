// Package emit turns a classified record into the abstract artifacts of its
// builder: storage slots, a constructor, the setter methods and the
// finalize step.
//
// Artifacts carry no Go text. The gen package renders them to source and
// the interp package executes them directly.
package emit
