package versor_test

import (
	"math"
	"testing"

	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/ga"
	"github.com/TheZerth/GASmith/versor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotor_QuarterTurn: the rotor of the e1e2 plane at π/2 rotates e1
// exactly onto e2.
func TestRotor_QuarterTurn(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := basisVec(t, alg, 0)
	e2 := basisVec(t, alg, 1)

	r, err := versor.FromPlane(e1, e2, math.Pi/2, nil)
	require.NoError(t, err)

	rotated, err := r.Apply(e1)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rotated.Component(blade.Axis(1)), 1e-9, "e1 lands on e2")
	for i := 0; i < alg.BladeCount(); i++ {
		if blade.Mask(i) == blade.Axis(1) {
			continue
		}
		assert.InDelta(t, 0.0, rotated.Component(blade.Mask(i)), 1e-9, "mask %#08b stays zero", i)
	}
}

// TestRotor_UnitNorm: any constructed rotor satisfies R·~R == 1 as a pure
// scalar.
func TestRotor_UnitNorm(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	a := basisVec(t, alg, 0)

	b := ga.NewMultivector(alg)
	require.NoError(t, b.SetComponent(blade.Axis(1), 2))
	require.NoError(t, b.SetComponent(blade.Axis(2), 1))

	r, err := versor.FromPlane(a, b, 0.73, nil)
	require.NoError(t, err)

	norm, err := ga.GeometricProduct(r.Multivector(), ga.Reverse(r.Multivector()))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, norm.Scalar(), 1e-9)
	for i := 1; i < alg.BladeCount(); i++ {
		assert.InDelta(t, 0.0, norm.Component(blade.Mask(i)), 1e-9, "mask %#08b", i)
	}
}

// TestRotor_FullTurnIsIdentity: rotating by 2π reproduces the operand.
func TestRotor_FullTurnIsIdentity(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := basisVec(t, alg, 0)
	e2 := basisVec(t, alg, 1)

	r, err := versor.FromPlane(e1, e2, 2*math.Pi, nil)
	require.NoError(t, err)

	x := ga.NewMultivector(alg)
	require.NoError(t, x.SetComponent(blade.Axis(0), 3))
	require.NoError(t, x.SetComponent(blade.Axis(2), -1))

	rotated, err := r.Apply(x)
	require.NoError(t, err)
	assert.True(t, x.AlmostEqual(rotated, 1e-9), "got %v", rotated)
}

// TestRotor_PreservesOutOfPlaneAxis: rotating in the e1e2 plane leaves e3
// untouched.
func TestRotor_PreservesOutOfPlaneAxis(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)

	r, err := versor.FromPlane(basisVec(t, alg, 0), basisVec(t, alg, 1), 1.1, nil)
	require.NoError(t, err)

	e3 := basisVec(t, alg, 2)
	rotated, err := r.Apply(e3)
	require.NoError(t, err)
	assert.True(t, e3.AlmostEqual(rotated, 1e-9), "got %v", rotated)
}

// TestRotor_FromPlane_Degenerate: parallel spanning vectors define no
// rotation plane.
func TestRotor_FromPlane_Degenerate(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := basisVec(t, alg, 0)

	_, err := versor.FromPlane(e1, e1.Scale(2), math.Pi/3, nil)
	assert.ErrorIs(t, err, versor.ErrDegeneratePlane)
}

// TestRotor_FromBivector_NoAlgebra rejects detached bivectors.
func TestRotor_FromBivector_NoAlgebra(t *testing.T) {
	_, err := versor.FromBivector(ga.Multivector{}, 1, nil)
	assert.ErrorIs(t, err, ga.ErrNoAlgebra)
}

// TestRotor_MatchesVersorSandwich: a rotor applied as a plain versor gives
// the same transformation.
func TestRotor_MatchesVersorSandwich(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)

	r, err := versor.FromPlane(basisVec(t, alg, 0), basisVec(t, alg, 1), 0.4, nil)
	require.NoError(t, err)

	v, err := versor.New(r.Multivector(), nil)
	require.NoError(t, err)

	x := ga.NewMultivector(alg)
	require.NoError(t, x.SetComponent(blade.Axis(0), 1))
	require.NoError(t, x.SetComponent(blade.Axis(2), 2))

	viaRotor, err := r.Apply(x)
	require.NoError(t, err)
	viaVersor, err := v.Apply(x)
	require.NoError(t, err)

	assert.True(t, viaRotor.AlmostEqual(viaVersor, 1e-9), "rotor %v vs versor %v", viaRotor, viaVersor)
}
