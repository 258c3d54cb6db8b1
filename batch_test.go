package mset_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/mset"
	"github.com/stretchr/testify/require"
)

func testTerms(n int, offset uint64) []mset.Term[fr.Element] {
	terms := make([]mset.Term[fr.Element], n)
	for i := range terms {
		var e fr.Element
		e.SetUint64(offset + uint64(i) + 1)
		terms[i] = mset.Term[fr.Element]{Elem: e, Count: uint64(i % 7)}
	}
	return terms
}

func applySequential(h hash, adds, removes []mset.Term[fr.Element]) (hash, error) {
	for _, term := range adds {
		h = h.Add(term.Elem, term.Count)
	}
	var err error
	for _, term := range removes {
		if h, err = h.Remove(term.Elem, term.Count); err != nil {
			return hash{}, err
		}
	}
	return h, nil
}

func TestApplyMatchesSequential(t *testing.T) {
	assert := require.New(t)

	adds := testTerms(200, 0)
	removes := testTerms(60, 1000)

	expected, err := applySequential(newHash(), adds, removes)
	assert.NoError(err)

	got, err := newHash().Apply(adds, removes)
	assert.NoError(err)
	assert.True(got.Equal(expected))

	// a worker count of one falls back to the sequential path
	got, err = newHash().Apply(adds, removes, mset.WithNbTasks(1))
	assert.NoError(err)
	assert.True(got.Equal(expected))
}

func TestApplyEmpty(t *testing.T) {
	assert := require.New(t)

	h := newHash().Add(testTerms(1, 41)[0].Elem, 5)
	got, err := h.Apply(nil, nil)
	assert.NoError(err)
	assert.True(got.Equal(h))
}

func TestApplyRejectsZeroRemove(t *testing.T) {
	assert := require.New(t)

	removes := testTerms(8, 0)
	removes[3].Elem = fr.Element{} // additive identity
	removes[3].Count = 1

	_, err := newHash().Apply(nil, removes)
	assert.ErrorIs(err, mset.ErrInvalidElement)
	assert.ErrorContains(err, "index 3")
}

func TestApplyInvalidOption(t *testing.T) {
	assert := require.New(t)

	_, err := newHash().Apply(testTerms(4, 0), nil, mset.WithNbTasks(-1))
	assert.Error(err)
}

func TestSum(t *testing.T) {
	assert := require.New(t)

	terms := testTerms(50, 0)
	expected, err := applySequential(newHash(), terms, nil)
	assert.NoError(err)

	got, err := mset.Sum[fr.Element, *fr.Element](terms)
	assert.NoError(err)
	assert.True(got.Equal(expected))
}

const benchSize = 1 << 10

func BenchmarkAdd(b *testing.B) {
	var e fr.Element
	e.SetUint64(123456789)
	h := newHash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h = h.Add(e, 42)
	}
}

func BenchmarkRemove(b *testing.B) {
	var e fr.Element
	e.SetUint64(123456789)
	h := newHash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ = h.Remove(e, 42)
	}
}

func BenchmarkApply(b *testing.B) {
	adds := testTerms(benchSize, 0)
	removes := testTerms(benchSize/4, 1<<20)
	h := newHash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Apply(adds, removes); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApplySequential(b *testing.B) {
	adds := testTerms(benchSize, 0)
	removes := testTerms(benchSize/4, 1<<20)
	h := newHash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Apply(adds, removes, mset.WithNbTasks(1)); err != nil {
			b.Fatal(err)
		}
	}
}
