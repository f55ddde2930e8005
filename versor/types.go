package versor

import "errors"

// DefaultEpsilon is the near-zero threshold below which a scalar norm is
// treated as non-invertible.
const DefaultEpsilon = 1e-6

// ErrNearSingular is returned when a versor's defining scalar norm ⟨V ~V⟩₀
// is within Epsilon of zero, so no inverse (or normalization) exists.
var ErrNearSingular = errors.New("versor: scalar norm too close to zero")

// ErrDegeneratePlane is returned by Rotor construction when the wedge of
// the two spanning vectors has (near-)zero norm: parallel vectors, or a
// plane collapsed by a null metric, define no rotation plane.
var ErrDegeneratePlane = errors.New("versor: rotation plane has near-zero norm")

// Options configures the numeric policy of inversion and normalization.
//   - Epsilon: |⟨V ~V⟩₀| ≤ Epsilon is reported as ErrNearSingular
//     (default DefaultEpsilon).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// normalize resolves nil/zero options to usable values.
func (o *Options) normalize() Options {
	if o == nil || o.Epsilon <= 0 {
		return DefaultOptions()
	}
	return *o
}
