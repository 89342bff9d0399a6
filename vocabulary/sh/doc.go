// Package sh provides IRI constants for the subset of the SHACL vocabulary
// the code generator consumes.
//
// The generator does not implement SHACL Core semantics. These constants
// exist so the schema model and violation reports can reference constraint
// components by their standard IRIs rather than ad-hoc strings.
package sh
