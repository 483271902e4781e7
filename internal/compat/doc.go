// Package compat is the diagnostic substrate of the IDL compatibility
// checker: the error-code taxonomy, the immutable finding record, the
// append-only collection, and the reporting context the comparison
// algorithm drives.
//
// # Data model
//
// Code is a stable string identifier (ID0001..ID0061), one per
// distinguishable kind of incompatibility. Codes are the contract that
// negative-test suites assert on; message wording may evolve, codes never
// move or collide. The registry is validated once at init and a collision
// panics before any diagnostic can be emitted.
//
// Error is one finding: code, command, rendered message, the two compared
// directories, and the file the violation was found in. ErrorCollection
// stores findings in insertion order, never removes them, and renders them
// in a byte-stable single-line format.
//
// # Emitting
//
// The comparison algorithm holds one Context per run and calls a
// semantically named Report* method per detected incompatibility; it never
// builds Error values directly. Dual-variant reports take a FieldKind that
// selects between the command-parameter and the command-type-field arm of
// a fixed code pair. Identifier arguments consumed by only one arm are
// passed as Optional values, never as empty strings.
//
// # Error classes
//
// Findings are data, not failures: accumulating any number of them is the
// collection working as intended; the driver decides pass/fail from
// HasErrors after the run. Defects of this package itself (a duplicate
// code in the registry) halt at init. Lookup helpers on the collection are
// total and return (Error, bool); fail-on-miss ergonomics for tests live
// in the compattest subpackage.
//
// The package performs no I/O beyond Dump writing to a caller-supplied
// writer, and is not safe for concurrent mutation: parallel drivers use
// one collection per worker and Merge afterwards.
package compat
