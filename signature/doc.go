// Package signature defines the metric of a geometric algebra: how each
// basis axis squares under the geometric product.
//
// A signature is a triplet (p, q, r):
//
//   - p axes square to +1 — ordinary Euclidean directions;
//   - q axes square to -1 — imaginary-like directions (time in STA);
//   - r axes square to  0 — null directions (the point at infinity in PGA).
//
// Well-known spaces:
//
//	Euclidean 3D  (3,0,0)   — 3 axes
//	STA           (1,3,0)   — 1 time + 3 space
//	PGA 3D        (3,0,1)   — 3 space + 1 null
//	CGA 3D        (4,1,0)   — 5 axes
//
// The metric is diagonal (orthogonal basis assumed): g(i,j) = 0 for i ≠ j
// and g(i,i) ∈ {+1,-1,0}. Canonical axis ordering assigns +1 to the first
// p axes, -1 to the next q, and 0 to the last r. Signatures are immutable
// values; construction validates capacity and mask disjointness and fails
// with a sentinel error rather than producing a partially built value.
package signature
