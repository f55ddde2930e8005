package ga

import (
	"fmt"

	"github.com/TheZerth/GASmith/blade"
)

// GradeFilter decides whether a single term of the geometric product
// survives, given the grades of the two source blades and of the resulting
// blade. A nil filter keeps everything.
type GradeFilter func(gradeA, gradeB, gradeR int) bool

// Named filters for the derived products. Exported so callers can feed them
// to GeometricProductFiltered directly or compose their own.
var (
	// WedgeFilter keeps grade-raising terms only: gradeR == gradeA + gradeB.
	WedgeFilter GradeFilter = func(gradeA, gradeB, gradeR int) bool {
		return gradeR == gradeA+gradeB
	}

	// InnerFilter keeps the Hestenes inner product: gradeR == |gradeA - gradeB|.
	InnerFilter GradeFilter = func(gradeA, gradeB, gradeR int) bool {
		diff := gradeA - gradeB
		if diff < 0 {
			diff = -diff
		}
		return gradeR == diff
	}

	// LeftContractionFilter keeps gradeR == gradeB - gradeA when gradeA ≤ gradeB.
	LeftContractionFilter GradeFilter = func(gradeA, gradeB, gradeR int) bool {
		return gradeA <= gradeB && gradeR == gradeB-gradeA
	}

	// RightContractionFilter keeps gradeR == gradeA - gradeB when gradeA ≥ gradeB.
	RightContractionFilter GradeFilter = func(gradeA, gradeB, gradeR int) bool {
		return gradeA >= gradeB && gradeR == gradeA-gradeB
	}
)

// GeometricProductFiltered computes the geometric product of a and b,
// keeping only the terms the filter accepts.
//
// Algorithm outline:
//  1. Both operands must share the same Algebra instance.
//  2. For every pair of masks (i, j) with nonzero coefficients in a and b,
//     compute BladeGeometricProduct(e_i, e_j) under the algebra's metric.
//  3. Drop zero blades (null-axis contractions) and terms the filter
//     rejects; accumulate coeffA·coeffB·sign into the result at the
//     product's mask.
//
// The double loop is O(4^dims) blade products — at the 8-axis cap that is
// 65536 evaluations. Loop order is fixed (ascending masks) so accumulation
// is deterministic.
//
// A filter that rejects everything still yields the exact zero multivector
// of the shared algebra, never a detached value.
func GeometricProductFiltered(a, b Multivector, keep GradeFilter) (Multivector, error) {
	if err := sameAlgebra(a, b); err != nil {
		return Multivector{}, fmt.Errorf("GeometricProductFiltered: %w", err)
	}

	alg := a.alg
	sig := alg.sig
	count := alg.BladeCount()
	out := NewMultivector(alg)

	for i := 0; i < count; i++ {
		coeffA := a.coeff[i]
		if coeffA == 0 {
			continue
		}
		maskA := blade.Mask(i)
		gradeA := blade.Grade(maskA)

		for j := 0; j < count; j++ {
			coeffB := b.coeff[j]
			if coeffB == 0 {
				continue
			}
			maskB := blade.Mask(j)

			gp := BladeGeometricProduct(
				blade.Blade{Mask: maskA, Sign: +1},
				blade.Blade{Mask: maskB, Sign: +1},
				sig,
			)
			if gp.IsZero() {
				continue
			}
			if keep != nil && !keep(gradeA, blade.Grade(maskB), blade.Grade(gp.Mask)) {
				continue
			}

			out.coeff[gp.Mask] += coeffA * coeffB * float64(gp.Sign)
		}
	}

	return out, nil
}

// GeometricProduct computes the unrestricted geometric product a·b.
func GeometricProduct(a, b Multivector) (Multivector, error) {
	return GeometricProductFiltered(a, b, nil)
}

// Wedge computes the outer (grade-raising, antisymmetric) product a∧b.
func Wedge(a, b Multivector) (Multivector, error) {
	return GeometricProductFiltered(a, b, WedgeFilter)
}

// Inner computes the Hestenes inner (grade-lowering) product.
func Inner(a, b Multivector) (Multivector, error) {
	return GeometricProductFiltered(a, b, InnerFilter)
}

// LeftContraction computes a ⌋ b: a removed from the left of b.
// Terms with grade(a) > grade(b) vanish, so e.g. contracting a bivector
// onto a vector yields the exact zero multivector.
func LeftContraction(a, b Multivector) (Multivector, error) {
	return GeometricProductFiltered(a, b, LeftContractionFilter)
}

// RightContraction computes a ⌊ b: b removed from the right of a.
func RightContraction(a, b Multivector) (Multivector, error) {
	return GeometricProductFiltered(a, b, RightContractionFilter)
}
