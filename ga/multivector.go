package ga

import (
	"fmt"
	"math"
	"strings"

	"github.com/TheZerth/GASmith/blade"
)

// Multivector is a linear combination of every basis blade of an algebra:
// one float64 coefficient per blade mask, dense regardless of sparsity.
//
// The zero Multivector value has no algebra attached; operations that need
// one return ErrNoAlgebra (involutions treat it as a passthrough instead,
// see involutions.go). Multivectors are cheap handles: copying the struct
// aliases the coefficient buffer, use Clone for an independent value.
type Multivector struct {
	alg   *Algebra
	coeff denseStorage
}

// NewMultivector returns the zero multivector of alg: every coefficient 0.
func NewMultivector(alg *Algebra) Multivector {
	if alg == nil {
		return Multivector{}
	}
	return Multivector{alg: alg, coeff: newDenseStorage(alg.dims)}
}

// Algebra returns the algebra descriptor, or nil for the detached zero value.
func (m Multivector) Algebra() *Algebra { return m.alg }

// Component returns the coefficient at blade mask mask. Detached
// multivectors and out-of-range masks read as 0.
func (m Multivector) Component(mask blade.Mask) float64 {
	if int(mask) >= len(m.coeff) {
		return 0
	}
	return m.coeff[mask]
}

// SetComponent writes the coefficient at blade mask mask. This is the only
// mutation the type offers; everything else builds fresh values.
func (m Multivector) SetComponent(mask blade.Mask, v float64) error {
	if m.alg == nil {
		return fmt.Errorf("SetComponent(%#x): %w", mask, ErrNoAlgebra)
	}
	if int(mask) >= len(m.coeff) {
		return fmt.Errorf("SetComponent(%#x): %w", mask, ErrOutOfRange)
	}
	m.coeff[mask] = v
	return nil
}

// Scalar returns the grade-0 component.
func (m Multivector) Scalar() float64 { return m.Component(0) }

// Clone returns an independent copy sharing the same algebra.
func (m Multivector) Clone() Multivector {
	if m.alg == nil {
		return Multivector{}
	}
	return Multivector{alg: m.alg, coeff: m.coeff.clone()}
}

// Scale returns m with every coefficient multiplied by s.
func (m Multivector) Scale(s float64) Multivector {
	out := m.Clone()
	out.coeff.scale(s)
	return out
}

// Add returns m + b. Both operands must share the same algebra.
func (m Multivector) Add(b Multivector) (Multivector, error) {
	if err := sameAlgebra(m, b); err != nil {
		return Multivector{}, fmt.Errorf("Add: %w", err)
	}
	out := m.Clone()
	for i := range out.coeff {
		out.coeff[i] += b.coeff[i]
	}
	return out, nil
}

// Sub returns m - b. Both operands must share the same algebra.
func (m Multivector) Sub(b Multivector) (Multivector, error) {
	if err := sameAlgebra(m, b); err != nil {
		return Multivector{}, fmt.Errorf("Sub: %w", err)
	}
	out := m.Clone()
	for i := range out.coeff {
		out.coeff[i] -= b.coeff[i]
	}
	return out, nil
}

// AlmostEqual reports whether every coefficient of m and b agrees within
// eps. Multivectors from different algebras are never equal; two detached
// multivectors always are.
func (m Multivector) AlmostEqual(b Multivector, eps float64) bool {
	if m.alg != b.alg {
		return false
	}
	for i := range m.coeff {
		if math.Abs(m.coeff[i]-b.coeff[i]) > eps {
			return false
		}
	}
	return true
}

// String renders nonzero components as "c" or "c·e<axes>" terms joined by
// " + ", e.g. "1 + 2e1 + -3e12". The zero multivector renders as "0".
func (m Multivector) String() string {
	if m.alg == nil {
		return "Multivector{<no algebra>}"
	}
	var sb strings.Builder
	first := true
	for i, c := range m.coeff {
		if c == 0 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		fmt.Fprintf(&sb, "%g", c)
		if i == 0 {
			continue
		}
		sb.WriteByte('e')
		for axis := 0; axis < m.alg.dims; axis++ {
			if blade.Has(blade.Mask(i), axis) {
				fmt.Fprintf(&sb, "%d", axis+1)
			}
		}
	}
	if first {
		return "0"
	}
	return sb.String()
}

// sameAlgebra checks the shared-algebra precondition of every binary
// operation: both attached, and attached to the same Algebra instance.
func sameAlgebra(a, b Multivector) error {
	if a.alg == nil || b.alg == nil {
		return ErrNoAlgebra
	}
	if a.alg != b.alg {
		return ErrAlgebraMismatch
	}
	return nil
}
