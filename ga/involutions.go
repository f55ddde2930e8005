package ga

import "github.com/TheZerth/GASmith/blade"

// The three classical involutions are pointwise sign maps over grades: a
// grade-r component is scaled by ±1 depending only on r. Each is its own
// inverse. A detached multivector (no algebra) passes through unchanged:
// there is nothing to transform and the operation carries no metric, so
// no error is reported.

// Reverse flips the factor order of every blade: sign (-1)^(r(r-1)/2),
// pattern +,+,-,-,+,+,-,- by grade.
func Reverse(a Multivector) Multivector {
	return signMap(a, func(r int) int {
		if (r*(r-1)/2)&1 == 1 {
			return -1
		}
		return +1
	})
}

// GradeInvolution negates odd grades: sign (-1)^r.
func GradeInvolution(a Multivector) Multivector {
	return signMap(a, func(r int) int {
		if r&1 == 1 {
			return -1
		}
		return +1
	})
}

// CliffordConjugate is the composition of Reverse and GradeInvolution (in
// either order): sign (-1)^(r(r+1)/2), pattern +,-,-,+,+,-,- by grade.
func CliffordConjugate(a Multivector) Multivector {
	return signMap(a, func(r int) int {
		if (r*(r+1)/2)&1 == 1 {
			return -1
		}
		return +1
	})
}

// signMap applies a grade-determined ±1 scale to every nonzero component.
func signMap(a Multivector, sign func(grade int) int) Multivector {
	if a.alg == nil {
		return a
	}
	out := NewMultivector(a.alg)
	for i, c := range a.coeff {
		if c == 0 {
			continue
		}
		out.coeff[i] = c * float64(sign(blade.Grade(blade.Mask(i))))
	}
	return out
}
