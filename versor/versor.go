package versor

import (
	"fmt"
	"math"

	"github.com/TheZerth/GASmith/ga"
)

// Versor is an invertible multivector acting on the algebra by the
// sandwich product X' = V X V⁻¹.
type Versor struct {
	mv  ga.Multivector
	eps float64
}

// New wraps a multivector as a versor. The multivector must carry an
// algebra; invertibility is checked lazily at Inverse/Apply time, since it
// is a property of the coefficients, not the type.
func New(mv ga.Multivector, opts *Options) (Versor, error) {
	if mv.Algebra() == nil {
		return Versor{}, fmt.Errorf("versor.New: %w", ga.ErrNoAlgebra)
	}
	return Versor{mv: mv, eps: opts.normalize().Epsilon}, nil
}

// Multivector returns the underlying multivector.
func (v Versor) Multivector() ga.Multivector { return v.mv }

// Inverse computes V⁻¹ = ~V / ⟨V ~V⟩₀.
//
// For a proper versor V·~V is a pure scalar; only its grade-0 part is
// consulted. Returns ErrNearSingular when that scalar is within Epsilon of
// zero.
func (v Versor) Inverse() (ga.Multivector, error) {
	rev := ga.Reverse(v.mv)
	norm2, err := ga.GeometricProduct(v.mv, rev)
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("Versor.Inverse: %w", err)
	}
	s := norm2.Scalar()
	if math.Abs(s) <= v.eps {
		return ga.Multivector{}, fmt.Errorf("Versor.Inverse: %w", ErrNearSingular)
	}
	return rev.Scale(1 / s), nil
}

// Apply transforms x by the sandwich product V x V⁻¹. The operand must
// share the versor's algebra.
func (v Versor) Apply(x ga.Multivector) (ga.Multivector, error) {
	inv, err := v.Inverse()
	if err != nil {
		return ga.Multivector{}, err
	}
	vx, err := ga.GeometricProduct(v.mv, x)
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("Versor.Apply: %w", err)
	}
	out, err := ga.GeometricProduct(vx, inv)
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("Versor.Apply: %w", err)
	}
	return out, nil
}
