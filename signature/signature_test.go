package signature_test

import (
	"testing"

	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Canonical verifies the canonical +1/-1/0 axis ordering for a few
// well-known signatures.
func TestNew_Canonical(t *testing.T) {
	tests := []struct {
		name       string
		p, q, r    int
		wantMetric []int
	}{
		{"Euclidean3", 3, 0, 0, []int{1, 1, 1}},
		{"STA", 1, 3, 0, []int{1, -1, -1, -1}},
		{"PGA3D", 3, 0, 1, []int{1, 1, 1, 0}},
		{"CGA3D", 4, 1, 0, []int{1, 1, 1, 1, -1}},
		{"Empty", 0, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := signature.New(tt.p, tt.q, tt.r, true)
			require.NoError(t, err)

			assert.Equal(t, tt.p, sig.P())
			assert.Equal(t, tt.q, sig.Q())
			assert.Equal(t, tt.r, sig.R())
			assert.Equal(t, tt.p+tt.q+tt.r, sig.Dimensions())
			for i, g := range tt.wantMetric {
				assert.Equal(t, g, sig.Metric(i), "axis %d", i)
			}
		})
	}
}

// TestNew_Overflow rejects negative counts and capacity overruns.
func TestNew_Overflow(t *testing.T) {
	_, err := signature.New(5, 4, 0, true)
	assert.ErrorIs(t, err, signature.ErrDimensionOverflow, "p+q+r > 8 must overflow")

	_, err = signature.New(-1, 0, 0, true)
	assert.ErrorIs(t, err, signature.ErrDimensionOverflow, "negative counts must overflow")
}

// TestFromMetric accepts arbitrary axis order and counts entries per class.
func TestFromMetric(t *testing.T) {
	sig, err := signature.FromMetric([]int{0, 1, -1, 1}, true)
	require.NoError(t, err)

	assert.Equal(t, 2, sig.P())
	assert.Equal(t, 1, sig.Q())
	assert.Equal(t, 1, sig.R())
	assert.Equal(t, 4, sig.Dimensions())
	assert.Equal(t, 0, sig.Metric(0), "explicit ordering is preserved")
	assert.Equal(t, 1, sig.Metric(1))
	assert.Equal(t, -1, sig.Metric(2))
}

// TestFromMetric_Errors rejects bad entries and oversized metrics.
func TestFromMetric_Errors(t *testing.T) {
	_, err := signature.FromMetric([]int{1, 2}, true)
	assert.ErrorIs(t, err, signature.ErrBadMetric)

	_, err = signature.FromMetric(make([]int, 9), true)
	assert.ErrorIs(t, err, signature.ErrDimensionOverflow)
}

// TestFromMasks builds a mixed signature from disjoint axis sets.
func TestFromMasks(t *testing.T) {
	pos := blade.Axis(0) | blade.Axis(1)
	neg := blade.Axis(3)
	null := blade.Axis(2)

	sig, err := signature.FromMasks(pos, neg, null, true)
	require.NoError(t, err)

	assert.Equal(t, 4, sig.Dimensions(), "highest axis + 1")
	assert.True(t, sig.IsPositive(0))
	assert.True(t, sig.IsPositive(1))
	assert.True(t, sig.IsNull(2))
	assert.True(t, sig.IsNegative(3))
	assert.True(t, sig.IsDegenerate())
}

// TestFromMasks_Overlap rejects any shared axis.
func TestFromMasks_Overlap(t *testing.T) {
	a := blade.Axis(1)
	_, err := signature.FromMasks(a, a, 0, true)
	assert.ErrorIs(t, err, signature.ErrMaskOverlap)

	_, err = signature.FromMasks(a, 0, a, true)
	assert.ErrorIs(t, err, signature.ErrMaskOverlap)

	_, err = signature.FromMasks(0, a, a, true)
	assert.ErrorIs(t, err, signature.ErrMaskOverlap)
}

// TestAccessors covers the classification helpers and the out-of-range
// metric fallback.
func TestAccessors(t *testing.T) {
	sig, err := signature.New(1, 1, 1, false)
	require.NoError(t, err)

	assert.False(t, sig.IsRightHanded())
	assert.True(t, sig.IsDegenerate())
	assert.False(t, sig.IsEuclidean())
	assert.Equal(t, 0, sig.Metric(17), "out-of-range axes read as 0")
	assert.False(t, sig.IsNull(17), "out-of-range axes are not null axes")
	assert.Equal(t, "(1,1,1)", sig.String())

	euc, err := signature.New(2, 0, 0, true)
	require.NoError(t, err)
	assert.True(t, euc.IsEuclidean())
	assert.False(t, euc.IsDegenerate())
}
