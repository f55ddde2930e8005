package blade

import "math/bits"

// MaxDimensions is the hard cap on basis axes: 8 axes fit one mask byte and
// bound every dense coefficient array to 2^8 = 256 slots.
const MaxDimensions = 8

// Mask encodes a basis blade as a set of axes, one bit per axis.
// Axis i corresponds to bit i; bit 0 is e1 in conventional notation.
type Mask uint8

// Blade pairs an axis mask with an orientation sign.
//
// Sign is always one of {-1, 0, +1}. Sign == 0 denotes the zero blade
// (the Mask of a zero blade is meaningless and kept at 0); Mask == 0 with
// Sign == ±1 denotes the scalar unit.
type Blade struct {
	Mask Mask
	Sign int
}

// Zero returns the zero blade.
func Zero() Blade { return Blade{} }

// ScalarUnit returns the positive scalar unit blade.
func ScalarUnit() Blade { return Blade{Mask: 0, Sign: +1} }

// IsZero reports whether b is the zero blade.
func (b Blade) IsZero() bool { return b.Sign == 0 }

// IsScalarUnit reports whether b is a (possibly negated) scalar unit.
func (b Blade) IsScalarUnit() bool { return b.Mask == 0 && b.Sign != 0 }

// Grade returns the number of basis axes composing the mask:
// 0 for scalars, 1 for vectors, 2 for bivectors, and so on.
func Grade(m Mask) int { return bits.OnesCount8(uint8(m)) }

// Has reports whether axis i participates in the mask.
// Out-of-range axes are never present.
func Has(m Mask, i int) bool {
	if i < 0 || i >= MaxDimensions {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// Axis returns the single-bit mask for axis i, or the empty mask when i is
// outside [0, MaxDimensions). Callers that require a real basis vector must
// validate i themselves; the empty mask is the scalar slot, not an axis.
func Axis(i int) Mask {
	if i < 0 || i >= MaxDimensions {
		return 0
	}
	return 1 << uint(i)
}

// Highest returns the index of the most significant set axis, or -1 for the
// empty mask.
func Highest(m Mask) int {
	return bits.Len8(uint8(m)) - 1
}

// Overlap reports whether the two masks share at least one axis.
func Overlap(a, b Mask) bool { return a&b != 0 }

// New builds the canonical (ascending-axis) blade from an unordered list of
// axis indices.
//
// The list is sorted while counting transpositions; the parity of that count
// is the blade's orientation. A repeated axis collapses the blade to zero
// (e_i ∧ e_i = 0). An empty list yields the positive scalar unit. The zero
// blade is returned when the list is longer than MaxDimensions or contains
// an out-of-range axis.
func New(axes ...int) Blade {
	if len(axes) > MaxDimensions {
		return Zero()
	}
	if len(axes) == 0 {
		return ScalarUnit()
	}

	// Copy so the caller's slice is untouched, validating as we go.
	sorted := make([]int, len(axes))
	for i, a := range axes {
		if a < 0 || a >= MaxDimensions {
			return Zero()
		}
		sorted[i] = a
	}

	// Insertion sort, counting transpositions. With at most 8 entries the
	// quadratic cost is irrelevant and the swap count falls out for free.
	swaps := 0
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			swaps++
		}
	}

	var m Mask
	for i, a := range sorted {
		if i > 0 && sorted[i-1] == a {
			return Zero() // duplicate axis: wedge self-annihilation
		}
		m |= Axis(a)
	}

	sign := +1
	if swaps&1 == 1 {
		sign = -1
	}
	return Blade{Mask: m, Sign: sign}
}

// Combine computes the canonical wedge of two already-canonical blades.
//
// Rules, in order:
//   - zero in, zero out;
//   - a scalar-unit operand acts as identity up to sign;
//   - overlapping masks annihilate (duplicate axis under the wedge);
//   - otherwise the result mask is the XOR of the operands and the sign is
//     a.Sign·b.Sign·(−1)^swaps, where swaps counts, for each axis of b, the
//     axes of a with a strictly greater index (the inversion count of
//     merging two sorted axis sequences).
func Combine(a, b Blade) Blade {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if a.IsScalarUnit() {
		return Blade{Mask: b.Mask, Sign: a.Sign * b.Sign}
	}
	if b.IsScalarUnit() {
		return Blade{Mask: a.Mask, Sign: a.Sign * b.Sign}
	}
	if Overlap(a.Mask, b.Mask) {
		return Zero()
	}

	swaps := 0
	for j := 0; j < MaxDimensions; j++ {
		if !Has(b.Mask, j) {
			continue
		}
		// Axes of a above j must each hop over b's axis j.
		swaps += bits.OnesCount8(uint8(a.Mask >> uint(j+1)))
	}

	sign := a.Sign * b.Sign
	if swaps&1 == 1 {
		sign = -sign
	}
	return Blade{Mask: a.Mask ^ b.Mask, Sign: sign}
}
