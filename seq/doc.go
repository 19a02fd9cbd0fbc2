// Package seq defines the sequence data model shared by the checker and
// sorter packages: a minimal get/set/len contract over an indexable, mutable
// container, adapters for plain slices and gods ArrayLists, and the
// validation predicates every entry point consults before touching elements.
//
// # Ownership
//
// Sequences are caller-owned values. Nothing in this module retains a
// Sequence past the call that received it, and nothing mutates one except
// the operations documented as in-place.
//
// # Validation
//
// ValidRange is the single predicate behind the fail-closed behavior of the
// whole module: a nil or empty sequence, or a range outside
// 0 <= start <= last <= Len, makes checkers report false and sorters do
// nothing. The predicates are pure and never panic.
package seq
