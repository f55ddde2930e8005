package ga

import "github.com/TheZerth/GASmith/signature"

// Algebra pairs a Signature with its derived blade space. One Algebra is
// built per metric and shared (by pointer) across every Multivector in that
// metric; pointer identity is what binary operations compare.
type Algebra struct {
	sig  signature.Signature
	dims int
}

// New builds the Algebra descriptor for a signature. The signature was
// validated at its own construction, so New cannot fail.
func New(sig signature.Signature) *Algebra {
	return &Algebra{sig: sig, dims: sig.Dimensions()}
}

// Signature returns the metric this algebra evaluates under.
func (a *Algebra) Signature() signature.Signature { return a.sig }

// Dimensions returns the number of basis axes.
func (a *Algebra) Dimensions() int { return a.dims }

// BladeCount returns the size of the full blade space, 2^Dimensions.
func (a *Algebra) BladeCount() int { return 1 << uint(a.dims) }
