// Package linmap extends linear maps on an algebra's vector space to
// outermorphisms over its whole blade space.
//
// A LinearMap stores a dims×dims real matrix whose column j is the image
// of the basis vector e_j. ApplyToVector transforms grade-1 multivectors
// directly; Apply extends the map to arbitrary multivectors through the
// defining property of an outermorphism,
//
//	L(a ∧ b) = L(a) ∧ L(b),
//
// by decomposing each basis blade into its ascending axis factors, mapping
// each factor, and wedging the images back together. Scalars pass through
// unchanged. The extension costs O(2^dims · dims) wedge products — bounded
// by the 8-axis cap like everything else in the engine.
package linmap
