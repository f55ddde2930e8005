// Package gasmith is a geometric (Clifford) algebra evaluation engine:
// given a metric signature describing how basis directions square
// (positive, negative, or null), it represents and multiplies
// multivectors — linear combinations of basis blades spanning all 2^n
// grade-subspaces of an n-dimensional space (n ≤ 8).
//
// 🚀 What is GASmith?
//
//	A small, zero-dependency evaluation kernel that brings together:
//		• Blades: basis elements encoded as bitmasks with an orientation sign
//		• Signatures: arbitrary diagonal (p,q,r) metrics — Euclidean, STA, PGA, CGA…
//		• Multivectors: dense coefficient arrays with O(1) blade indexing
//		• Products: geometric, wedge, inner, left/right contraction via one engine
//		• Involutions: reverse, grade involution, Clifford conjugate
//		• Dual: Hodge complement through the pseudoscalar
//		• Versors & rotors: sandwich-product transformations on top of the core
//
// ✨ Why choose GASmith?
//
//   - Exact sign bookkeeping — parity, contraction and degeneracy handled per axis
//   - Null axes are first-class — projective and conformal metrics just work
//   - Pure Go — no cgo, no hidden deps, deterministic loops
//   - Bounded — everything fits in 256 coefficients, no allocation surprises
//
// Under the hood, everything is organized under focused subpackages:
//
//	blade/     — bitmask blade combinatorics (grade, canonical wedge, parity)
//	signature/ — (p,q,r) diagonal metric construction and lookup
//	ga/        — Algebra, Multivector, the product engine, involutions, dual
//	versor/    — invertible versors and rotors acting by sandwich products
//	linmap/    — linear maps extended to outermorphisms over blades
//	e2/, e3/   — ready-made Euclidean 2D/3D algebras with named basis blades
//
// Quick ASCII example:
//
//	    e1 ∧ e2 = e12        e1 · e1 = +1 (Euclidean)
//	    e2 ∧ e1 = -e12       e3 · e3 =  0 (projective null axis)
//
//	the geometric product fuses both behaviors into one associative product.
//
// Dive into each package's doc.go for algorithms, complexity notes and
// runnable examples.
//
//	go get github.com/TheZerth/GASmith
package gasmith
