// Package order decides whether a sub-range of a sequence is non-decreasing
// under a caller-supplied comparator. Three independently implemented
// strategies answer the same question; call sites choose between them for
// readability or traversal-order reasons, and the test suite holds them to
// each other.
//
// # Strategies
//
// Linear scans adjacent pairs front to back and short-circuits on the first
// inversion. It is the reference semantics: the other strategies are judged
// against it.
//
// Cocktail visits the same adjacent pairs from both ends at once, two per
// iteration for ceil(n/2) iterations. It returns the same verdict as Linear
// on every input; that equivalence is a hard contract, not a coincidence.
//
// Divided splits the range at its midpoint (comparing the two middle
// elements directly when the length is even) and confirms each half with a
// recursive partition check that compares elements symmetrically inward from
// the half's ends. The partition check is weaker than adjacency: it agrees
// with Linear on sorted input, fully reversed input, and endpoint swaps, but
// an inversion hugging an odd-length split point can escape it. For example,
// with elements 4,2,3 occupying a range of length three, the inversion
// between 4 and 2 is invisible to the partition sweep, so Divided reports
// sorted where Linear reports not. This is intentional, documented behavior:
// Divided exists to exercise the range validation and recursion structure,
// and must not be used where adjacency-level enforcement is required.
//
// # Validation
//
// All entry points share one acceptance gate, Checkable: the comparator must
// be non-nil and the range must satisfy 0 <= start <= last <= Len over a
// non-empty sequence. A rejected call returns false without looking at a
// single element. The gate never panics; these are query functions meant to
// be safe inside assertions. Note the asymmetry: an empty sequence fails the
// gate, while an empty range over a non-empty sequence is trivially sorted.
//
// Comparator panics are not recovered; they propagate to the caller as-is.
//
// # Choosing a strategy
//
// Use Linear unless there is a reason not to. Cocktail halves the iteration
// count at the cost of two comparisons per step, which only matters when the
// comparator is trivial and the range is long. Divided is for sampling and
// structural testing, never enforcement.
package order
