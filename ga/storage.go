// Package ga - dense coefficient storage.
//
// Purpose:
//   - One flat float64 buffer per multivector, indexed directly by blade
//     mask (offset == mask), zero-initialized on creation.
//   - Fixed loop orders everywhere for determinism; no map iteration.
//   - Bounded: the 8-axis cap means a buffer never exceeds 256 entries, so
//     helpers copy and scale eagerly instead of sharing.

package ga

// denseStorage is the coefficient buffer of a multivector:
// len == 1<<dims, data[mask] is the coefficient of the blade with that mask.
type denseStorage []float64

// newDenseStorage allocates a zeroed buffer for a dims-axis blade space.
func newDenseStorage(dims int) denseStorage {
	return make(denseStorage, 1<<uint(dims))
}

// clone returns an independent copy.
func (d denseStorage) clone() denseStorage {
	out := make(denseStorage, len(d))
	copy(out, d)
	return out
}

// scale multiplies every coefficient in place.
func (d denseStorage) scale(s float64) {
	for i := range d {
		d[i] *= s
	}
}
