package versor

import (
	"fmt"
	"math"

	"github.com/TheZerth/GASmith/ga"
)

// Rotor is an even versor acting by X' = R X ~R. Constructed rotors are
// normalized so that R ~R = 1 up to floating precision.
type Rotor struct {
	mv  ga.Multivector
	eps float64
}

// Multivector returns the underlying multivector.
func (r Rotor) Multivector() ga.Multivector { return r.mv }

// FromBivector builds the rotor R = cos(θ/2) − sin(θ/2)·B and normalizes
// it. B is expected to be (approximately) a unit bivector describing the
// rotation plane; use FromPlane to normalize an arbitrary plane first.
func FromBivector(b ga.Multivector, theta float64, opts *Options) (Rotor, error) {
	alg := b.Algebra()
	if alg == nil {
		return Rotor{}, fmt.Errorf("versor.FromBivector: %w", ga.ErrNoAlgebra)
	}

	half := theta * 0.5
	mv := b.Scale(-math.Sin(half))
	if err := mv.SetComponent(0, mv.Component(0)+math.Cos(half)); err != nil {
		return Rotor{}, fmt.Errorf("versor.FromBivector: %w", err)
	}

	r := Rotor{mv: mv, eps: opts.normalize().Epsilon}
	if err := r.Normalize(); err != nil {
		return Rotor{}, fmt.Errorf("versor.FromBivector: %w", err)
	}
	return r, nil
}

// FromPlane builds a rotor rotating by theta in the plane spanned by the
// vectors a and b: the bivector a∧b is normalized by its metric norm
// √|⟨B·B⟩₀| and handed to FromBivector. Near-parallel vectors (or planes
// collapsed by a null metric) report ErrDegeneratePlane.
func FromPlane(a, b ga.Multivector, theta float64, opts *Options) (Rotor, error) {
	o := opts.normalize()

	plane, err := ga.Wedge(a, b)
	if err != nil {
		return Rotor{}, fmt.Errorf("versor.FromPlane: %w", err)
	}

	// For a pure bivector B, B·B is scalar; its magnitude is the squared
	// metric norm of the plane.
	bb, err := ga.Inner(plane, plane)
	if err != nil {
		return Rotor{}, fmt.Errorf("versor.FromPlane: %w", err)
	}
	norm2 := math.Abs(bb.Scalar())
	if norm2 <= o.Epsilon {
		return Rotor{}, fmt.Errorf("versor.FromPlane: %w", ErrDegeneratePlane)
	}

	return FromBivector(plane.Scale(1/math.Sqrt(norm2)), theta, &o)
}

// Normalize rescales the rotor so that R ~R = 1. Returns ErrNearSingular
// when ⟨R ~R⟩₀ is within Epsilon of zero.
func (r *Rotor) Normalize() error {
	if r.mv.Algebra() == nil {
		return fmt.Errorf("Rotor.Normalize: %w", ga.ErrNoAlgebra)
	}
	norm2, err := ga.GeometricProduct(r.mv, ga.Reverse(r.mv))
	if err != nil {
		return fmt.Errorf("Rotor.Normalize: %w", err)
	}
	s := norm2.Scalar()
	if math.Abs(s) <= r.eps {
		return fmt.Errorf("Rotor.Normalize: %w", ErrNearSingular)
	}
	r.mv = r.mv.Scale(1 / math.Sqrt(math.Abs(s)))
	return nil
}

// Apply transforms x by the sandwich product R x ~R. For a unit rotor this
// equals the general versor sandwich, with the reverse standing in for the
// inverse.
func (r Rotor) Apply(x ga.Multivector) (ga.Multivector, error) {
	rx, err := ga.GeometricProduct(r.mv, x)
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("Rotor.Apply: %w", err)
	}
	out, err := ga.GeometricProduct(rx, ga.Reverse(r.mv))
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("Rotor.Apply: %w", err)
	}
	return out, nil
}
