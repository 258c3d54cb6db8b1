// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bls12381 provides a multiset hash over the BLS12-381 scalar field.
package bls12381
