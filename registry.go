package mset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
)

// ErrCurveMismatch is returned by [Accumulator] binary operations when the
// operands live in the scalar fields of different curves. Hashes over
// different fields are not comparable and cannot be combined.
var ErrCurveMismatch = errors.New("accumulators are bound to different curves")

// Accumulator is a multiset hash erased of its concrete field type. The
// curve packages provide implementations over their scalar fields and
// register them here; Accumulator is what callers use when the curve is a
// runtime choice (configuration, CLI flag, wire format) rather than a
// compile-time one. Statically-typed code should use the curve packages
// directly.
//
// Like [Hash], an Accumulator is an immutable value: operations return the
// resulting accumulator and never modify the receiver.
type Accumulator interface {
	// Curve returns the curve whose scalar field the hash lives in.
	Curve() ecc.ID

	// Insert returns the accumulator with count more instances of the
	// element that data maps to under the curve's hash-to-field.
	Insert(data []byte, count uint64) (Accumulator, error)

	// Remove returns the accumulator with count fewer instances of the
	// element that data maps to under the curve's hash-to-field.
	Remove(data []byte, count uint64) (Accumulator, error)

	// Union returns the accumulator of the multiset union. It fails with
	// ErrCurveMismatch if other is bound to another curve.
	Union(other Accumulator) (Accumulator, error)

	// Difference returns the accumulator of the multiset difference. It
	// fails with ErrCurveMismatch if other is bound to another curve, or
	// with ErrInvalidElement if other carries a non-invertible hash.
	Difference(other Accumulator) (Accumulator, error)

	// Equal reports whether both accumulators are bound to the same curve
	// and commit to the same field element.
	Equal(other Accumulator) bool

	// IsIdentity reports whether the accumulator hashes the empty multiset.
	IsIdentity() bool

	// Bytes returns the raw serialized field element.
	Bytes() []byte

	String() string
}

type accumulatorBuilder struct {
	build  func() Accumulator
	decode func(data []byte) Accumulator
}

var (
	accumulators = make(map[ecc.ID]accumulatorBuilder)
	lock         sync.RWMutex
)

// RegisterAccumulator registers the accumulator implementation for a curve.
// It is called from the init function of the curve packages; to ensure a
// curve is registered, import the corresponding curve package.
//
// Alternatively, you can import the [github.com/consensys/mset/all] package
// which registers every supported curve.
func RegisterAccumulator(id ecc.ID, build func() Accumulator, decode func(data []byte) Accumulator) {
	if build == nil || decode == nil {
		panic(fmt.Sprintf("incomplete accumulator registration for curve \"%s\"", id))
	}
	lock.Lock()
	defer lock.Unlock()
	accumulators[id] = accumulatorBuilder{build: build, decode: decode}
}

// NewAccumulator returns the empty-multiset accumulator over the scalar
// field of the given curve.
func NewAccumulator(id ecc.ID) (Accumulator, error) {
	lock.RLock()
	defer lock.RUnlock()
	b, ok := accumulators[id]
	if !ok {
		return nil, fmt.Errorf("curve \"%s\" not registered. Import the corresponding curve package", id)
	}
	return b.build(), nil
}

// AccumulatorFromBytes rebuilds an accumulator from the encoding produced by
// [Accumulator.Bytes]. The curve is not part of the encoding and must be
// supplied by the caller.
func AccumulatorFromBytes(id ecc.ID, data []byte) (Accumulator, error) {
	lock.RLock()
	defer lock.RUnlock()
	b, ok := accumulators[id]
	if !ok {
		return nil, fmt.Errorf("curve \"%s\" not registered. Import the corresponding curve package", id)
	}
	return b.decode(data), nil
}

// RegisteredCurves returns the curves with a registered accumulator
// implementation, in no particular order.
func RegisteredCurves() []ecc.ID {
	lock.RLock()
	defer lock.RUnlock()
	ids := make([]ecc.ID, 0, len(accumulators))
	for id := range accumulators {
		ids = append(ids, id)
	}
	return ids
}
