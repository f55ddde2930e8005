package signature

import (
	"fmt"

	"github.com/TheZerth/GASmith/blade"
)

// Signature describes a diagonal metric over up to blade.MaxDimensions
// basis axes. The zero value is the empty signature (no axes), which is
// valid and describes the algebra of plain scalars.
//
// Signatures are immutable: every accessor is read-only and constructors
// return fully built values or an error, never both.
type Signature struct {
	p, q, r     int
	metric      [blade.MaxDimensions]int
	dims        int
	rightHanded bool
}

// New builds the canonical signature with p positive, q negative and r null
// axes, in that axis order. It returns ErrDimensionOverflow when any count
// is negative or the total exceeds blade.MaxDimensions.
func New(p, q, r int, rightHanded bool) (Signature, error) {
	if p < 0 || q < 0 || r < 0 || p+q+r > blade.MaxDimensions {
		return Signature{}, fmt.Errorf("New(%d,%d,%d): %w", p, q, r, ErrDimensionOverflow)
	}
	s := Signature{p: p, q: q, r: r, dims: p + q + r, rightHanded: rightHanded}
	i := 0
	for n := 0; n < p; n++ {
		s.metric[i] = +1
		i++
	}
	for n := 0; n < q; n++ {
		s.metric[i] = -1
		i++
	}
	for n := 0; n < r; n++ {
		s.metric[i] = 0
		i++
	}
	return s, nil
}

// FromMetric builds a signature from an explicit per-axis diagonal metric.
// Unlike New, the axis ordering is taken as given — the metric is the
// ordering. Entries must be -1, 0 or +1; at most blade.MaxDimensions axes.
func FromMetric(metric []int, rightHanded bool) (Signature, error) {
	if len(metric) > blade.MaxDimensions {
		return Signature{}, fmt.Errorf("FromMetric(len=%d): %w", len(metric), ErrDimensionOverflow)
	}
	s := Signature{dims: len(metric), rightHanded: rightHanded}
	for i, g := range metric {
		switch g {
		case +1:
			s.p++
		case -1:
			s.q++
		case 0:
			s.r++
		default:
			return Signature{}, fmt.Errorf("FromMetric(axis %d = %d): %w", i, g, ErrBadMetric)
		}
		s.metric[i] = g
	}
	return s, nil
}

// FromMasks builds a signature from three disjoint axis sets: pos axes
// square to +1, neg to -1, null to 0. Any axis in none of the masks simply
// does not exist; the dimension count is the highest set axis plus one.
// Returns ErrMaskOverlap when two masks share an axis.
func FromMasks(pos, neg, null blade.Mask, rightHanded bool) (Signature, error) {
	if pos&neg != 0 || pos&null != 0 || neg&null != 0 {
		return Signature{}, fmt.Errorf("FromMasks(%#08b,%#08b,%#08b): %w", pos, neg, null, ErrMaskOverlap)
	}
	all := pos | neg | null
	s := Signature{dims: blade.Highest(all) + 1, rightHanded: rightHanded}
	for i := 0; i < s.dims; i++ {
		switch {
		case blade.Has(pos, i):
			s.metric[i] = +1
			s.p++
		case blade.Has(neg, i):
			s.metric[i] = -1
			s.q++
		default:
			// Absent from all masks or explicitly null: squares to zero.
			s.metric[i] = 0
			s.r++
		}
	}
	return s, nil
}

// P returns the number of positive-squaring axes.
func (s Signature) P() int { return s.p }

// Q returns the number of negative-squaring axes.
func (s Signature) Q() int { return s.q }

// R returns the number of null axes.
func (s Signature) R() int { return s.r }

// Dimensions returns the total axis count p+q+r.
func (s Signature) Dimensions() int { return s.dims }

// Metric returns g(i,i) for axis i: +1, -1 or 0. Out-of-range axes report 0,
// so blades that were validated against Dimensions never observe the branch.
func (s Signature) Metric(i int) int {
	if i < 0 || i >= s.dims {
		return 0
	}
	return s.metric[i]
}

// IsPositive reports whether axis i squares to +1.
func (s Signature) IsPositive(i int) bool { return s.Metric(i) == +1 }

// IsNegative reports whether axis i squares to -1.
func (s Signature) IsNegative(i int) bool { return s.Metric(i) == -1 }

// IsNull reports whether axis i is a null axis (in range and squaring to 0).
func (s Signature) IsNull(i int) bool { return i >= 0 && i < s.dims && s.metric[i] == 0 }

// IsRightHanded reports the orientation convention of the pseudoscalar.
func (s Signature) IsRightHanded() bool { return s.rightHanded }

// IsDegenerate reports whether the metric contains at least one null axis.
func (s Signature) IsDegenerate() bool { return s.r > 0 }

// IsEuclidean reports whether every axis squares to +1.
func (s Signature) IsEuclidean() bool { return s.q == 0 && s.r == 0 }

// String renders the signature as "(p,q,r)" for diagnostics.
func (s Signature) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.p, s.q, s.r)
}
