// Package ga: sentinel error set.
// All operations return these sentinels on user-triggered conditions and
// tests match them via errors.Is. Panics are reserved for broken internal
// invariants that validated inputs cannot produce.

package ga

import "errors"

var (
	// ErrNoAlgebra indicates a Multivector without an attached Algebra was
	// used in an operation that requires one (the zero Multivector value).
	ErrNoAlgebra = errors.New("ga: multivector has no algebra attached")

	// ErrAlgebraMismatch indicates a binary operation over multivectors
	// built from different Algebra instances. Algebras compare by pointer
	// identity: equal signatures in distinct Algebra values still mismatch.
	ErrAlgebraMismatch = errors.New("ga: multivectors built from different algebras")

	// ErrOutOfRange indicates a blade mask or axis index outside the
	// algebra's declared dimension range.
	ErrOutOfRange = errors.New("ga: blade mask or axis out of range")
)
