// Package e2 provides the Euclidean 2D algebra (signature (2,0,0)) with
// named basis-blade constructors: scalars, the vectors e1 and e2, and the
// unit bivector e12. All multivectors returned here share one package-level
// algebra, so they combine freely with each other.
package e2

import (
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/ga"
	"github.com/TheZerth/GASmith/signature"
)

var alg = func() *ga.Algebra {
	sig, err := signature.New(2, 0, 0, true)
	if err != nil {
		panic("e2: building (2,0,0) signature: " + err.Error())
	}
	return ga.New(sig)
}()

// Algebra returns the shared Euclidean 2D algebra.
func Algebra() *ga.Algebra { return alg }

// Scalar returns the multivector s·1.
func Scalar(s float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(0, s)
	return mv
}

// Vector returns x·e1 + y·e2.
func Vector(x, y float64) ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(blade.Axis(0), x)
	_ = mv.SetComponent(blade.Axis(1), y)
	return mv
}

// E1 returns the unit basis vector e1.
func E1() ga.Multivector { return Vector(1, 0) }

// E2 returns the unit basis vector e2.
func E2() ga.Multivector { return Vector(0, 1) }

// E12 returns the unit bivector e1∧e2 (the pseudoscalar of the plane).
func E12() ga.Multivector {
	mv := ga.NewMultivector(alg)
	_ = mv.SetComponent(blade.Axis(0)|blade.Axis(1), 1)
	return mv
}
