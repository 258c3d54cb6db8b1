// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bw6761 provides a multiset hash over the BW6-761 scalar field.
package bw6761
