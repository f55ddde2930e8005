// Package e3 provides the Euclidean 3D algebra (signature (3,0,0)) with
// named basis-blade constructors: scalars, the vectors e1..e3, the unit
// bivectors e12/e13/e23 and the pseudoscalar e123. All multivectors
// returned here share one package-level algebra.
package e3

import (
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/ga"
	"github.com/TheZerth/GASmith/signature"
)

var alg = func() *ga.Algebra {
	sig, err := signature.New(3, 0, 0, true)
	if err != nil {
		panic("e3: building (3,0,0) signature: " + err.Error())
	}
	return ga.New(sig)
}()

// Algebra returns the shared Euclidean 3D algebra.
func Algebra() *ga.Algebra { return alg }

// Scalar returns the multivector s·1.
func Scalar(s float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(0, s)
	return mv
}

// Vector returns x·e1 + y·e2 + z·e3.
func Vector(x, y, z float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(blade.Axis(0), x)
	_ = mv.SetComponent(blade.Axis(1), y)
	_ = mv.SetComponent(blade.Axis(2), z)
	return mv
}

// Bivector returns xy·e12 + xz·e13 + yz·e23.
func Bivector(xy, xz, yz float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(blade.Axis(0)|blade.Axis(1), xy)
	_ = mv.SetComponent(blade.Axis(0)|blade.Axis(2), xz)
	_ = mv.SetComponent(blade.Axis(1)|blade.Axis(2), yz)
	return mv
}

// E1 returns the unit basis vector e1.
func E1() ga.Multivector { return Vector(1, 0, 0) }

// E2 returns the unit basis vector e2.
func E2() ga.Multivector { return Vector(0, 1, 0) }

// E3 returns the unit basis vector e3.
func E3() ga.Multivector { return Vector(0, 0, 1) }

// E12 returns the unit bivector e1∧e2.
func E12() ga.Multivector { return Bivector(1, 0, 0) }

// E13 returns the unit bivector e1∧e3.
func E13() ga.Multivector { return Bivector(0, 1, 0) }

// E23 returns the unit bivector e2∧e3.
func E23() ga.Multivector { return Bivector(0, 0, 1) }

// Pseudoscalar returns s·e123.
func Pseudoscalar(s float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(blade.Axis(0)|blade.Axis(1)|blade.Axis(2), s)
	return mv
}

// E123 returns the unit pseudoscalar e1∧e2∧e3.
func E123() ga.Multivector { return Pseudoscalar(1) }
