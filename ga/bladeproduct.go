package ga

import (
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/signature"
)

// BladeGeometricProduct computes the geometric product of two basis blades
// under a diagonal metric. It fuses the two halves of the Clifford product
// in a single merge scan over the sorted axis lists:
//
//   - reordering: interleaving b's axes through a's costs one sign flip per
//     inversion (axis of b passing an odd number of remaining axes of a);
//   - contraction: an axis present in both blades annihilates pairwise,
//     scaling the sign by g(i,i) — which is +1, -1 or, on a null axis, 0,
//     collapsing the whole product to the zero blade;
//   - the result mask is a.Mask XOR b.Mask: contracted axes cancel,
//     disjoint axes remain.
//
// The zero blade and scalar-unit shortcuts come first, so the scan only
// ever sees genuine axis lists. A pure-scalar result (mask 0, sign ±1) is
// a valid outcome, e.g. e1·e1 in a Euclidean metric.
func BladeGeometricProduct(a, b blade.Blade, sig signature.Signature) blade.Blade {
	if a.IsZero() || b.IsZero() {
		return blade.Zero()
	}
	if a.IsScalarUnit() {
		return blade.Blade{Mask: b.Mask, Sign: a.Sign * b.Sign}
	}
	if b.IsScalarUnit() {
		return blade.Blade{Mask: a.Mask, Sign: a.Sign * b.Sign}
	}

	// Extract sorted axis lists; canonical blades are already ascending.
	var listA, listB [blade.MaxDimensions]int
	lenA, lenB := 0, 0
	for i := 0; i < blade.MaxDimensions; i++ {
		if blade.Has(a.Mask, i) {
			listA[lenA] = i
			lenA++
		}
		if blade.Has(b.Mask, i) {
			listB[lenB] = i
			lenB++
		}
	}

	sign := a.Sign * b.Sign
	var result blade.Mask

	i, j := 0, 0
	for i < lenA && j < lenB {
		ia, jb := listA[i], listB[j]
		switch {
		case ia == jb:
			// Matching axis: b's copy first hops over the axes of a that
			// sit above position i, then e_i e_i contracts to g(i,i),
			// possibly 0.
			if (lenA-i-1)&1 == 1 {
				sign = -sign
			}
			sign *= sig.Metric(ia)
			if sign == 0 {
				return blade.Zero()
			}
			i++
			j++
		case ia < jb:
			result |= blade.Axis(ia)
			i++
		default:
			// Taking from b first: its axis hops over every remaining axis
			// of a, flipping the sign once per odd count.
			if (lenA-i)&1 == 1 {
				sign = -sign
			}
			result |= blade.Axis(jb)
			j++
		}
	}
	for ; i < lenA; i++ {
		result |= blade.Axis(listA[i])
	}
	for ; j < lenB; j++ {
		result |= blade.Axis(listB[j])
	}

	return blade.Blade{Mask: result, Sign: sign}
}
