// Package all registers the accumulator implementations of every supported
// curve. Import it for side effects when the curve is chosen at runtime:
//
//	import _ "github.com/consensys/mset/all"
package all

import (
	_ "github.com/consensys/mset/bls12377"
	_ "github.com/consensys/mset/bls12381"
	_ "github.com/consensys/mset/bn254"
	_ "github.com/consensys/mset/bw6761"
)
