// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mset

import (
	"fmt"
	"math/big"
)

// Hash is a homomorphic hash of a multiset: a single field element
//
//	h = ∏ φ(e)^m_e
//
// where φ maps domain elements into the field and m_e is the (possibly
// negative) multiplicity of e. The hash commits to the multiset without
// storing it; two value-equal multisets always hash identically, and two
// distinct multisets collide with probability bounded by the inverse of the
// multiplicative group order (modelling φ as a random oracle into the group).
//
// A Hash is an immutable value. Update operations return the resulting hash
// and leave the receiver untouched, so independent values may be used freely
// from concurrent goroutines; rebind instead of mutating:
//
//	h := bls12381.New()
//	h = h.Add(elem, 3)
//
// The zero value of the struct carries the additive identity, which is not
// the hash of any multiset; always start from [New].
type Hash[E any, P Element[E]] struct {
	h E
}

// New returns the hash of the empty multiset: the field's multiplicative
// identity. It is the neutral element of [Hash.Union].
func New[E any, P Element[E]]() Hash[E, P] {
	var res Hash[E, P]
	P(&res.h).SetOne()
	return res
}

// FromBytes rebuilds a hash from the raw field-element encoding produced by
// [Hash.Bytes]. The encoding (endianness, reduction) is entirely the field
// library's; FromBytes performs no interpretation of its own.
func FromBytes[E any, P Element[E]](data []byte) Hash[E, P] {
	var res Hash[E, P]
	P(&res.h).SetBytes(data)
	return res
}

// Add returns the hash of the multiset with count more instances of elem.
// Internally h is multiplied by elem^count, so the cost is one exponentiation
// regardless of count. Add is total: adding with count == 0 is the identity
// operation, whatever elem is.
//
// elem must come from a mapping that never yields the additive identity;
// adding a zero element with a non-zero count collapses the hash to zero and
// no subsequent operation can undo it (see [ToField]).
func (h Hash[E, P]) Add(elem E, count uint64) Hash[E, P] {
	var term E
	P(&term).Exp(elem, new(big.Int).SetUint64(count))
	var res Hash[E, P]
	P(&res.h).Mul(&h.h, &term)
	return res
}

// Remove returns the hash of the multiset with count fewer instances of elem.
// The multiplicity of elem may become negative; this is intentional (the
// commitment lives in a group, not in a non-negative count space) and is what
// makes Remove the exact inverse of [Hash.Add].
//
// Remove fails with [ErrInvalidElement] when the term to invert is the
// additive identity, that is when elem is zero and count > 0 (elem^0 is the
// multiplicative identity and remains invertible). On failure the receiver is
// unchanged and no partial result escapes.
func (h Hash[E, P]) Remove(elem E, count uint64) (Hash[E, P], error) {
	var term E
	P(&term).Exp(elem, new(big.Int).SetUint64(count))
	if P(&term).IsZero() {
		return Hash[E, P]{}, fmt.Errorf("%w: cannot remove a zero element", ErrInvalidElement)
	}
	P(&term).Inverse(&term)
	var res Hash[E, P]
	P(&res.h).Mul(&h.h, &term)
	return res, nil
}

// AddElem maps v into the field and delegates to [Hash.Add]. The only failure
// mode is the mapping itself.
func (h Hash[E, P]) AddElem(v ToField[E], count uint64) (Hash[E, P], error) {
	elem, err := v.HashToField()
	if err != nil {
		return Hash[E, P]{}, err
	}
	return h.Add(elem, count), nil
}

// RemoveElem maps v into the field and delegates to [Hash.Remove],
// propagating both mapping failures and [ErrInvalidElement].
func (h Hash[E, P]) RemoveElem(v ToField[E], count uint64) (Hash[E, P], error) {
	elem, err := v.HashToField()
	if err != nil {
		return Hash[E, P]{}, err
	}
	return h.Remove(elem, count)
}

// Union returns the hash of the multiset union, in which each element's
// multiplicity is the sum of its multiplicities in h and other. It is a
// single field multiplication on the commitments; the underlying multisets
// are not needed and cannot be recovered.
func (h Hash[E, P]) Union(other Hash[E, P]) Hash[E, P] {
	var res Hash[E, P]
	P(&res.h).Mul(&h.h, &other.h)
	return res
}

// Difference returns the hash of the multiset difference, in which each
// element's multiplicity is its multiplicity in h minus its multiplicity in
// other. Multiplicities of elements over-represented in other come out
// negative.
//
// Difference fails with [ErrInvalidElement] if other carries the additive
// identity. A hash built through this package's operations from non-zero
// elements is always a group element, so the check only fires on a malformed
// operand (for example, the struct zero value or bytes decoding to zero).
func (h Hash[E, P]) Difference(other Hash[E, P]) (Hash[E, P], error) {
	if P(&other.h).IsZero() {
		return Hash[E, P]{}, fmt.Errorf("%w: difference against a zero hash", ErrInvalidElement)
	}
	var inv E
	P(&inv).Inverse(&other.h)
	var res Hash[E, P]
	P(&res.h).Mul(&h.h, &inv)
	return res, nil
}

// SymmetricDifference returns Union(Difference(h, other), Difference(other, h)).
//
// Deprecated: the formula is algebraically degenerate. In the group the two
// differences cancel term by term, so the result is the identity hash for
// every pair of well-formed inputs; it does not compute the conventional
// absolute-difference symmetric difference, which (like element-wise minimum)
// is not expressible as a group homomorphism. The method is kept so that the
// degeneracy of this corner of the set algebra is explicit rather than
// silently dropped; new code has no reason to call it. See also the package
// documentation on the omitted intersection.
func (h Hash[E, P]) SymmetricDifference(other Hash[E, P]) (Hash[E, P], error) {
	left, err := h.Difference(other)
	if err != nil {
		return Hash[E, P]{}, err
	}
	right, err := other.Difference(h)
	if err != nil {
		return Hash[E, P]{}, err
	}
	return left.Union(right), nil
}

// Equal reports whether two hashes commit to the same field element, and
// hence (up to the collision bound) to the same multiset.
func (h Hash[E, P]) Equal(other Hash[E, P]) bool {
	return P(&h.h).Equal(&other.h)
}

// IsIdentity reports whether h is the hash of the empty multiset.
func (h Hash[E, P]) IsIdentity() bool {
	return P(&h.h).IsOne()
}

// Bytes returns the raw serialized field element. No framing is added; the
// encoding is owned by the field library.
func (h Hash[E, P]) Bytes() []byte {
	return P(&h.h).Marshal()
}

func (h Hash[E, P]) String() string {
	return P(&h.h).String()
}
