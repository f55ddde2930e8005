// Package ga is the evaluation core of GASmith: algebras, multivectors and
// every product defined over them.
//
// An Algebra pairs a signature.Signature with its derived dimension count
// and is shared by pointer across every Multivector built from it. A
// Multivector is a dense array of 2^dims float64 coefficients indexed
// directly by blade mask — a deliberate trade of memory (at most 256 slots)
// for O(1) component access and branch-free product loops.
//
// The product hierarchy is one engine plus filters:
//
//	BladeGeometricProduct    — sign and mask of e_A · e_B under a metric
//	GeometricProductFiltered — Σ over all nonzero coefficient pairs,
//	                           optionally filtered by (gradeA,gradeB,gradeR)
//	GeometricProduct         — nil filter
//	Wedge                    — keep gradeR == gradeA + gradeB
//	Inner                    — keep gradeR == |gradeA - gradeB|
//	LeftContraction          — keep gradeA ≤ gradeB, gradeR == gradeB - gradeA
//	RightContraction         — keep gradeA ≥ gradeB, gradeR == gradeA - gradeB
//
// The engine is O(4^dims) pair evaluations. At the 8-dimension cap that is
// 65536 blade products, cheap enough that the package never bothers with
// sparse storage.
//
// Involutions (Reverse, GradeInvolution, CliffordConjugate) and Dual are
// per-blade sign transforms layered on the same mask arithmetic.
//
// Binary operations require both operands to share the same *Algebra
// (pointer identity); combining multivectors from different algebras fails
// with ErrAlgebraMismatch, never a silent coercion. The Algebra must
// outlive every Multivector referencing it — with Go's GC that contract
// holds automatically.
package ga
