// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bn254 provides a multiset hash over the BN254 scalar field.
package bn254
