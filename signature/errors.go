package signature

import "errors"

// Sentinel error set for signature construction. Constructors MUST return
// these sentinels and tests match them via errors.Is; no constructor leaves
// a partially initialized Signature behind on failure.
var (
	// ErrDimensionOverflow is returned when axis counts are negative or
	// p+q+r exceeds blade.MaxDimensions.
	ErrDimensionOverflow = errors.New("signature: axis counts exceed capacity")

	// ErrMaskOverlap is returned when the positive/negative/null axis masks
	// passed to FromMasks are not pairwise disjoint.
	ErrMaskOverlap = errors.New("signature: overlapping axis masks")

	// ErrBadMetric is returned when an explicit metric entry is outside
	// {-1, 0, +1}.
	ErrBadMetric = errors.New("signature: metric entry outside {-1,0,+1}")
)
