// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bls12377 provides a multiset hash over the BLS12-377 scalar field.
package bls12377
