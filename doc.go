// Package mset provides a homomorphic multiset hash: a constant-size
// commitment to a multiset that can be updated incrementally and combined
// algebraically.
//
// The hash of a multiset M is the field element ∏ φ(e)^m_e, where φ maps
// elements into the scalar field of a curve and m_e is the multiplicity of e
// in M. Multiplicities are signed: removing more copies than were added is
// well defined and yields the inverse factor. The construction gives
//   - order independence: any insertion order yields the same hash;
//   - incrementality: adding or removing an element is one exponentiation;
//   - homomorphism: hash(A ⊎ B) = hash(A)·hash(B), and the multiset
//     difference divides the commitments.
//
// Set intersection has no counterpart here: element-wise minimum is not a
// group homomorphism, and the closest closed formula degenerates to one of
// its operands, so no intersection operation is provided. Symmetric
// difference suffers the same way; see [Hash.SymmetricDifference].
//
// mset supports the following curves:
//   - BN254
//   - BLS12_377
//   - BLS12_381
//   - BW6_761
//
// Generic code works with [Hash] directly; per-curve packages (e.g.
// [github.com/consensys/mset/bls12381]) fix the field and provide
// hash-to-field mappings, and the [Accumulator] registry erases the curve
// for runtime dispatch.
package mset

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.2.0")

// Curves return the curves supported by mset
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
		ecc.BLS12_377,
		ecc.BLS12_381,
		ecc.BW6_761,
	}
}
