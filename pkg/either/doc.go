// Package either implements a tagged Result union: every value is a
// success carrying a value of type T, or a failure carrying an error
// payload of type E, discriminated by a single boolean tag.
//
// Highlights:
// - Success/Failure: construct the two variants (Succeed/Failed for the Unit-payload forms)
// - From/FromBool/FromError: build results from boolean tests or (value, error) pairs
// - Success/Failure methods: comma-ok narrowing to a single case
// - Inspect/Invert/Unwrap: read the present payload, swap roles, extract with a fallback
// - Match: reduce a result to a concrete value via success/failure handlers
//
// Everything is a pure function over immutable records; the package
// performs no I/O, holds no state and is safe for concurrent use.
package either
