// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mset

import "errors"

// ErrInvalidElement is returned when an operation would need the
// multiplicative inverse of the additive identity: removing a zero element
// with a non-zero count, or taking the difference against a malformed (zero)
// hash. The condition is deterministic, triggered by the operand, and
// recoverable; it is never a panic.
var ErrInvalidElement = errors.New("invalid element: the additive identity is not invertible")
