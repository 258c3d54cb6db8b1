// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mset

import (
	"fmt"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"
)

// Term pairs a field element with a multiplicity for batch accumulation.
type Term[E any] struct {
	Elem  E
	Count uint64
}

// minBatchPerTask is the number of terms below which a chunk is not worth a
// goroutine; exponentiation dominates, so the threshold is low.
const minBatchPerTask = 16

// Apply returns the hash updated with all adds and removes in one pass.
// It is equivalent to folding [Hash.Add] over adds and [Hash.Remove] over
// removes, but exponentiations are spread over [Config.NbTasks] workers and
// the removed terms cost a single field inversion in total instead of one
// per term.
//
// If any remove term is the additive identity with a non-zero count, Apply
// fails with [ErrInvalidElement] identifying the offending index, and the
// receiver is unchanged. Apply never applies a prefix: the result is the
// full update or nothing.
func (h Hash[E, P]) Apply(adds, removes []Term[E], opts ...Option) (Hash[E, P], error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Hash[E, P]{}, err
	}
	log := cfg.Logger
	start := time.Now()

	addProd, err := product[E, P](adds, false, cfg.NbTasks)
	if err != nil {
		return Hash[E, P]{}, err
	}
	remProd, err := product[E, P](removes, true, cfg.NbTasks)
	if err != nil {
		return Hash[E, P]{}, err
	}

	// one inversion for the whole removed side
	P(&remProd).Inverse(&remProd)

	var res Hash[E, P]
	P(&res.h).Mul(&h.h, &addProd)
	P(&res.h).Mul(&res.h, &remProd)

	log.Debug().Int("adds", len(adds)).Int("removes", len(removes)).Dur("took", time.Since(start)).Msg("batch accumulate")
	return res, nil
}

// Sum accumulates all terms into the hash of the multiset they describe,
// starting from the empty multiset. It is a convenience for
// New().Apply(terms, nil, opts...).
func Sum[E any, P Element[E]](terms []Term[E], opts ...Option) (Hash[E, P], error) {
	return New[E, P]().Apply(terms, nil, opts...)
}

// product computes ∏ terms[i].Elem^terms[i].Count. When rejectZero is set, a
// zero term fails the whole computation; a product of non-zero elements of a
// prime field is never zero, so the per-term check is exact.
func product[E any, P Element[E]](terms []Term[E], rejectZero bool, nbTasks int) (E, error) {
	var acc E
	P(&acc).SetOne()

	if len(terms) == 0 {
		return acc, nil
	}

	accumulate := func(dst *E, start, end int) error {
		var term E
		var k big.Int
		for i := start; i < end; i++ {
			k.SetUint64(terms[i].Count)
			P(&term).Exp(terms[i].Elem, &k)
			if rejectZero && P(&term).IsZero() {
				return fmt.Errorf("%w: cannot remove zero element at index %d", ErrInvalidElement, i)
			}
			P(dst).Mul(dst, &term)
		}
		return nil
	}

	nbChunks := nbTasks
	if maxChunks := len(terms) / minBatchPerTask; nbChunks > maxChunks {
		nbChunks = maxChunks
	}
	if nbChunks <= 1 {
		if err := accumulate(&acc, 0, len(terms)); err != nil {
			var zero E
			return zero, err
		}
		return acc, nil
	}

	partials := make([]E, nbChunks)
	chunkSize := (len(terms) + nbChunks - 1) / nbChunks

	var g errgroup.Group
	for c := 0; c < nbChunks; c++ {
		start := c * chunkSize
		end := start + chunkSize
		if end > len(terms) {
			end = len(terms)
		}
		dst := &partials[c]
		P(dst).SetOne()
		g.Go(func() error {
			return accumulate(dst, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		var zero E
		return zero, err
	}

	for c := range partials {
		P(&acc).Mul(&acc, &partials[c])
	}
	return acc, nil
}
