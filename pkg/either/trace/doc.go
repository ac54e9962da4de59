// Package trace couples a Result with a stable identity and creation
// time so individual outcomes can be followed through logs and
// multi-step flows without touching the core two-field record.
//
// Highlights:
// - New/Wrap: stamp an existing Result with a fresh uuid and UTC timestamp
// - Success/Failure: trace a freshly constructed variant
// - Id/CreatedAt/Result: read the stamp and the wrapped result
// - Invert: swap the result roles while keeping the same identity
package trace
