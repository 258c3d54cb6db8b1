// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mset

import "math/big"

// Element is the constraint satisfied by a field-element type usable as the
// carrier of a multiset hash. It is expressed over pointer methods so that the
// fr.Element type of any gnark-crypto curve satisfies it structurally; a type
// implementing a prime field with the same method set works as well.
//
// The multiplicative group of the field is the commitment space: the hash of a
// multiset is a product of element powers, so the scheme only ever needs
// multiplication, exponentiation by a non-negative integer and inversion.
// Inverse must follow the gnark-crypto convention of being total with
// Inverse(0) == 0; callers in this package never invert the additive identity
// (they test IsZero first and fail with [ErrInvalidElement]).
type Element[E any] interface {
	*E

	SetOne() *E
	Mul(x, y *E) *E
	Exp(x E, k *big.Int) *E
	Inverse(x *E) *E

	IsZero() bool
	IsOne() bool
	Equal(x *E) bool

	Marshal() []byte
	SetBytes(b []byte) *E
	String() string
}

// ToField maps a domain value to a field element, the way the original datum
// enters the multiset. Implementations must be deterministic and
// collision-resistant, and must never produce the additive identity: a zero
// element is non-invertible and would make the committed multiset impossible
// to remove from. Implementations detecting that (cryptographically
// unreachable) case should return an error wrapping [ErrInvalidElement]
// instead of the zero element.
//
// The curve packages provide a ready-made implementation over byte records
// (for example [github.com/consensys/mset/bls12381.Record]); domain types with
// a natural serialization can implement ToField directly.
type ToField[E any] interface {
	HashToField() (E, error)
}
