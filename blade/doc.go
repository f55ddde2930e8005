// Package blade implements the metric-agnostic combinatorics of basis
// blades: the oriented basis elements of a geometric algebra.
//
// A blade is encoded as a bitmask with one bit per basis axis (axis 0 is
// bit 0, up to MaxDimensions axes) plus an orientation sign in {-1, 0, +1}.
// Sign 0 is the zero blade — the collapsed result of a wedge with a
// repeated axis. Mask 0 with sign ±1 is the scalar unit.
//
//	e1        → Mask 0b001
//	e2 ∧ e3   → Mask 0b110
//	e1 ∧ e1   → zero blade (self-annihilation)
//
// Everything here is pure bit manipulation and transposition counting; no
// metric is involved. Resolving what overlapping axes contract to is the
// job of ga.BladeGeometricProduct, which consumes a signature.Signature.
//
// Complexity quicksheet:
//   - Grade/Has/Axis/Highest/Overlap: O(1) bit ops.
//   - New: O(k²) over k listed axes (insertion-sort transposition count).
//   - Combine: O(d) over the dimension cap.
package blade
