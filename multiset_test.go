package mset_test

import (
	"encoding/binary"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/mset"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

type hash = mset.Hash[fr.Element, *fr.Element]

func newHash() hash {
	return mset.New[fr.Element, *fr.Element]()
}

// genElement generates a non-zero field element spread over the whole field,
// deterministically from the gopter seed.
func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		buf := make([]byte, fr.Bytes)
		for i := 0; i < len(buf); i += 8 {
			binary.BigEndian.PutUint64(buf[i:i+8], genParams.NextUint64())
		}
		var e fr.Element
		e.SetBytes(buf)
		if e.IsZero() {
			e.SetOne()
		}
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestHashProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("add is order independent", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			h1 := newHash().Add(a, uint64(m)).Add(b, uint64(n))
			h2 := newHash().Add(b, uint64(n)).Add(a, uint64(m))
			return h1.Equal(h2)
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("add accumulates counts", prop.ForAll(
		func(a fr.Element, m, n uint32) bool {
			h1 := newHash().Add(a, uint64(m)).Add(a, uint64(n))
			h2 := newHash().Add(a, uint64(m)+uint64(n))
			return h1.Equal(h2)
		},
		genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("remove undoes add", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			h, err := newHash().Add(a, uint64(m)).Add(b, uint64(n)).Remove(b, uint64(n))
			return err == nil && h.Equal(newHash().Add(a, uint64(m)))
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("union of hashes is hash of union", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			u := newHash().Add(a, uint64(m)).Union(newHash().Add(b, uint64(n)))
			return u.Equal(newHash().Add(a, uint64(m)).Add(b, uint64(n)))
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("union is commutative", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			h1 := newHash().Add(a, uint64(m))
			h2 := newHash().Add(b, uint64(n))
			return h1.Union(h2).Equal(h2.Union(h1))
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("empty hash is neutral for union", prop.ForAll(
		func(a fr.Element, m uint32) bool {
			h := newHash().Add(a, uint64(m))
			return h.Union(newHash()).Equal(h)
		},
		genElement(), gen.UInt32(),
	))

	properties.Property("difference undoes union", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			h1 := newHash().Add(a, uint64(m))
			h2 := newHash().Add(b, uint64(n))
			d, err := h1.Union(h2).Difference(h2)
			return err == nil && d.Equal(h1)
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("difference goes through negative multiplicities", prop.ForAll(
		func(a fr.Element, m uint32) bool {
			d, err := newHash().Difference(newHash().Add(a, uint64(m)))
			if err != nil {
				return false
			}
			r, err := newHash().Remove(a, uint64(m))
			return err == nil && d.Equal(r)
		},
		genElement(), gen.UInt32(),
	))

	properties.Property("symmetric difference degenerates to the empty hash", prop.ForAll(
		func(a, b fr.Element, m, n uint32) bool {
			h1 := newHash().Add(a, uint64(m))
			h2 := newHash().Add(b, uint64(n))
			sd, err := h1.SymmetricDifference(h2)
			return err == nil && sd.IsIdentity()
		},
		genElement(), genElement(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("bytes round trip", prop.ForAll(
		func(a fr.Element, m uint32) bool {
			h := newHash().Add(a, uint64(m))
			return mset.FromBytes[fr.Element, *fr.Element](h.Bytes()).Equal(h)
		},
		genElement(), gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNewIsIdentity(t *testing.T) {
	assert := require.New(t)

	h := newHash()
	assert.True(h.IsIdentity())

	var one fr.Element
	one.SetUint64(7)
	assert.False(h.Add(one, 1).IsIdentity())
}

func TestRemoveZero(t *testing.T) {
	assert := require.New(t)

	var zero fr.Element
	h := newHash()

	_, err := h.Remove(zero, 3)
	assert.ErrorIs(err, mset.ErrInvalidElement)

	// zero^0 is the multiplicative identity, still invertible
	got, err := h.Remove(zero, 0)
	assert.NoError(err)
	assert.True(got.Equal(h))
}

func TestDifferenceZeroHash(t *testing.T) {
	assert := require.New(t)

	// the struct zero value carries the additive identity and is not the
	// hash of any multiset
	var malformed hash
	_, err := newHash().Difference(malformed)
	assert.ErrorIs(err, mset.ErrInvalidElement)
}
