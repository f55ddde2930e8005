package ga

import "github.com/TheZerth/GASmith/blade"

// Dual computes the Hodge dual: each grade-r component at mask m maps to
// the complementary grade-(dims-r) slot comp = I ^ m, where I is the full
// pseudoscalar mask, with the sign of BladeGeometricProduct(e_m, e_comp).
//
// Degenerate-metric policy: a term whose blade product vanishes or lands
// on a mask other than the pseudoscalar has no well-defined dual and is
// skipped, leaving that slot zero. In non-degenerate metrics the guard
// never fires and Dual(Dual(a)) == a up to the standard per-grade sign
// pattern.
//
// A detached multivector passes through unchanged, like the involutions.
func Dual(a Multivector) Multivector {
	if a.alg == nil {
		return a
	}

	pseudo := blade.Mask(a.alg.BladeCount() - 1)
	sig := a.alg.sig
	out := NewMultivector(a.alg)

	for i, c := range a.coeff {
		if c == 0 {
			continue
		}
		m := blade.Mask(i)
		comp := pseudo ^ m

		gp := BladeGeometricProduct(
			blade.Blade{Mask: m, Sign: +1},
			blade.Blade{Mask: comp, Sign: +1},
			sig,
		)
		if gp.IsZero() || gp.Mask != pseudo {
			continue // degenerate complement: no well-defined dual term
		}

		out.coeff[comp] += c * float64(gp.Sign)
	}

	return out
}
