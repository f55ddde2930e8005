package linmap

import (
	"errors"
	"fmt"

	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/ga"
)

// ErrIndexOutOfRange is returned when a matrix index lies outside the
// algebra's declared dimension count.
var ErrIndexOutOfRange = errors.New("linmap: matrix index out of range")

// ErrNilAlgebra is returned when constructing a map without an algebra.
var ErrNilAlgebra = errors.New("linmap: nil algebra")

// LinearMap is a linear transformation of an algebra's vector space,
// extendable to the full blade space as an outermorphism. The zero matrix
// is never a useful map, so New initializes to the identity.
type LinearMap struct {
	alg *ga.Algebra
	m   [blade.MaxDimensions][blade.MaxDimensions]float64
}

// New returns the identity map on alg's vector space.
func New(alg *ga.Algebra) (*LinearMap, error) {
	if alg == nil {
		return nil, fmt.Errorf("linmap.New: %w", ErrNilAlgebra)
	}
	lm := &LinearMap{alg: alg}
	for i := 0; i < alg.Dimensions(); i++ {
		lm.m[i][i] = 1
	}
	return lm, nil
}

// Algebra returns the algebra the map operates on.
func (l *LinearMap) Algebra() *ga.Algebra { return l.alg }

// Set assigns matrix entry (row, col): the e_row coordinate of the image
// of e_col. Indices must lie within the algebra's dimensions.
func (l *LinearMap) Set(row, col int, v float64) error {
	if !l.inRange(row) || !l.inRange(col) {
		return fmt.Errorf("LinearMap.Set(%d,%d): %w", row, col, ErrIndexOutOfRange)
	}
	l.m[row][col] = v
	return nil
}

// At reads matrix entry (row, col).
func (l *LinearMap) At(row, col int) (float64, error) {
	if !l.inRange(row) || !l.inRange(col) {
		return 0, fmt.Errorf("LinearMap.At(%d,%d): %w", row, col, ErrIndexOutOfRange)
	}
	return l.m[row][col], nil
}

func (l *LinearMap) inRange(i int) bool { return i >= 0 && i < l.alg.Dimensions() }

// ApplyToVector maps the grade-1 part of v: L(e_j) = Σ_i m[i][j] e_i.
// Components of other grades are ignored by contract; use Apply for the
// full outermorphism.
func (l *LinearMap) ApplyToVector(v ga.Multivector) (ga.Multivector, error) {
	if v.Algebra() != l.alg {
		return ga.Multivector{}, fmt.Errorf("LinearMap.ApplyToVector: %w", mismatch(v))
	}

	dims := l.alg.Dimensions()
	out := ga.NewMultivector(l.alg)
	for j := 0; j < dims; j++ {
		c := v.Component(blade.Axis(j))
		if c == 0 {
			continue
		}
		for i := 0; i < dims; i++ {
			if l.m[i][j] == 0 {
				continue
			}
			mask := blade.Axis(i)
			if err := out.SetComponent(mask, out.Component(mask)+c*l.m[i][j]); err != nil {
				return ga.Multivector{}, fmt.Errorf("LinearMap.ApplyToVector: %w", err)
			}
		}
	}
	return out, nil
}

// Apply extends the map to an arbitrary multivector as an outermorphism:
// each basis blade decomposes into its ascending axes, every axis maps to
// its image vector, and the images are wedged back in order. The scalar
// component passes through unchanged.
func (l *LinearMap) Apply(a ga.Multivector) (ga.Multivector, error) {
	if a.Algebra() != l.alg {
		return ga.Multivector{}, fmt.Errorf("LinearMap.Apply: %w", mismatch(a))
	}

	count := l.alg.BladeCount()
	out := ga.NewMultivector(l.alg)

	for i := 0; i < count; i++ {
		m := blade.Mask(i)
		c := a.Component(m)
		if c == 0 {
			continue
		}
		if m == 0 {
			if err := out.SetComponent(0, out.Component(0)+c); err != nil {
				return ga.Multivector{}, fmt.Errorf("LinearMap.Apply: %w", err)
			}
			continue
		}

		image, err := l.bladeImage(m)
		if err != nil {
			return ga.Multivector{}, fmt.Errorf("LinearMap.Apply: %w", err)
		}
		sum, err := out.Add(image.Scale(c))
		if err != nil {
			return ga.Multivector{}, fmt.Errorf("LinearMap.Apply: %w", err)
		}
		out = sum
	}
	return out, nil
}

// bladeImage wedges the vector images of every axis of mask m, in
// ascending axis order.
func (l *LinearMap) bladeImage(m blade.Mask) (ga.Multivector, error) {
	out := ga.Multivector{}
	started := false
	for axis := 0; axis < l.alg.Dimensions(); axis++ {
		if !blade.Has(m, axis) {
			continue
		}
		img := l.columnImage(axis)
		if !started {
			out = img
			started = true
			continue
		}
		wedge, err := ga.Wedge(out, img)
		if err != nil {
			return ga.Multivector{}, err
		}
		out = wedge
	}
	return out, nil
}

// columnImage builds L(e_j) as a multivector.
func (l *LinearMap) columnImage(j int) ga.Multivector {
	out := ga.NewMultivector(l.alg)
	for i := 0; i < l.alg.Dimensions(); i++ {
		if l.m[i][j] != 0 {
			// Mask and index are validated by construction; Set cannot fail.
			_ = out.SetComponent(blade.Axis(i), l.m[i][j])
		}
	}
	return out
}

func mismatch(v ga.Multivector) error {
	if v.Algebra() == nil {
		return ga.ErrNoAlgebra
	}
	return ga.ErrAlgebraMismatch
}
