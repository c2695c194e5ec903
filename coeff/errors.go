// Package coeff defines the coefficient-ring contract shared by the sparse
// matrix and reducer layers, plus the two concrete rings the reducer
// supports: plain integers and the group ring Z[t]/(t²−1).
//
// What & Why:
//
//	Every entry stored in a sparse.Matrix is a ring element. The reducer
//	never inspects ring structure beyond Value's seven operations, so new
//	rings (were one ever needed) plug in without touching sparse or
//	reducer at all.
package coeff

// DefaultMaxMagnitude is the overflow fence applied unless a caller sets a
// tighter bound via sparse.WithMaxMagnitude. It is 2^30, half the signed
// 32-bit limit, comfortably above any coefficient a real boundary matrix
// produces.
const DefaultMaxMagnitude int64 = 1 << 30
