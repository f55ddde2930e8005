// Package versor implements sandwich-product transformations on top of the
// ga core: general versors V acting by X' = V X V⁻¹ and rotors R (even,
// normalized versors) acting by X' = R X ~R.
//
// A versor's inverse exists whenever the scalar part of V·~V is far enough
// from zero:
//
//	V⁻¹ = ~V / ⟨V ~V⟩₀
//
// "Far enough" is the Epsilon of Options (default 1e-6); a norm at or below
// it reports ErrNearSingular — a property of the data, distinct from the
// type-level mismatch errors of package ga.
//
// Rotors are built from a rotation plane and an angle:
//
//	R = cos(θ/2) − B̂ sin(θ/2)
//
// with B̂ the unit bivector of the plane. In Euclidean metrics this is a
// proper rotation; in other signatures the same construction yields the
// metric-appropriate Lorentz-like transformation. No even-grade structure
// is enforced at the type level — construct rotors through FromBivector or
// FromPlane to get one.
package versor
