package e3_test

import (
	"testing"

	"github.com/TheZerth/GASmith/e3"
	"github.com/TheZerth/GASmith/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSharedAlgebra: every constructor attaches the one package algebra,
// so results combine without mismatch errors.
func TestSharedAlgebra(t *testing.T) {
	assert.Same(t, e3.Algebra(), e3.E1().Algebra())
	assert.Same(t, e3.Algebra(), e3.E123().Algebra())
	assert.Equal(t, 3, e3.Algebra().Dimensions())
	assert.True(t, e3.Algebra().Signature().IsEuclidean())
}

// TestBasisProducts: the named units obey the Euclidean table.
func TestBasisProducts(t *testing.T) {
	sq, err := ga.GeometricProduct(e3.E1(), e3.E1())
	require.NoError(t, err)
	assert.True(t, e3.Scalar(1).AlmostEqual(sq, 1e-12), "e1·e1 == 1")

	w, err := ga.Wedge(e3.E1(), e3.E2())
	require.NoError(t, err)
	assert.True(t, e3.E12().AlmostEqual(w, 1e-12), "e1∧e2 == e12")

	tri, err := ga.Wedge(w, e3.E3())
	require.NoError(t, err)
	assert.True(t, e3.E123().AlmostEqual(tri, 1e-12), "e12∧e3 == e123")
}

// TestVectorAndBivector: coordinate constructors populate the right slots.
func TestVectorAndBivector(t *testing.T) {
	v := e3.Vector(1, 2, 3)
	sum, err := e3.E1().Add(e3.E2().Scale(2))
	require.NoError(t, err)
	sum, err = sum.Add(e3.E3().Scale(3))
	require.NoError(t, err)
	assert.True(t, v.AlmostEqual(sum, 1e-12))

	b := e3.Bivector(1, -2, 3)
	manual, err := e3.E12().Add(e3.E13().Scale(-2))
	require.NoError(t, err)
	manual, err = manual.Add(e3.E23().Scale(3))
	require.NoError(t, err)
	assert.True(t, b.AlmostEqual(manual, 1e-12))
}

// TestPseudoscalarSquare: e123·e123 == -1 in Euclidean 3-space.
func TestPseudoscalarSquare(t *testing.T) {
	sq, err := ga.GeometricProduct(e3.E123(), e3.E123())
	require.NoError(t, err)
	assert.True(t, e3.Scalar(-1).AlmostEqual(sq, 1e-12))
}
