package ga_test

import (
	"testing"

	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/ga"
	"github.com/TheZerth/GASmith/signature"
	"github.com/stretchr/testify/require"
)

// mustAlgebra builds an algebra for the canonical (p,q,r) signature,
// failing the test on construction errors.
func mustAlgebra(t *testing.T, p, q, r int) *ga.Algebra {
	t.Helper()
	sig, err := signature.New(p, q, r, true)
	require.NoError(t, err)
	return ga.New(sig)
}

// mv builds a multivector from a mask→coefficient table.
func mv(t *testing.T, alg *ga.Algebra, comps map[blade.Mask]float64) ga.Multivector {
	t.Helper()
	out := ga.NewMultivector(alg)
	for mask, c := range comps {
		require.NoError(t, out.SetComponent(mask, c))
	}
	return out
}

// basisVec builds the unit basis vector e_axis.
func basisVec(t *testing.T, alg *ga.Algebra, axis int) ga.Multivector {
	t.Helper()
	return mv(t, alg, map[blade.Mask]float64{blade.Axis(axis): 1})
}

// scalarMV builds the multivector s·1.
func scalarMV(t *testing.T, alg *ga.Algebra, s float64) ga.Multivector {
	t.Helper()
	return mv(t, alg, map[blade.Mask]float64{0: s})
}

// requireAlmostEqual asserts component-wise agreement within eps.
func requireAlmostEqual(t *testing.T, want, got ga.Multivector, eps float64) {
	t.Helper()
	require.True(t, want.AlmostEqual(got, eps), "want %v, got %v", want, got)
}
