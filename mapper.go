// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mset

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// MapToField hashes data to a field element with BLAKE2b-512 and a modular
// reduction of the digest. It is a cheap, curve-agnostic mapping; the curve
// packages expose stronger expand-message based mappings with their own
// domain separation tags, which should be preferred when the multiset is
// bound to one curve.
//
// The reduced digest is rejected if it lands on the additive identity, which
// happens with probability ~1/r for field order r; MapToField then returns
// [ErrInvalidElement] rather than an element that would poison the hash.
func MapToField[E any, P Element[E]](data []byte) (E, error) {
	digest := blake2b.Sum512(data)
	var res E
	P(&res).SetBytes(digest[:])
	if P(&res).IsZero() {
		var zero E
		return zero, fmt.Errorf("%w: data maps to the additive identity", ErrInvalidElement)
	}
	return res, nil
}
