// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package encoding offers (de)serialization APIs for multiset hashes.
//
// A raw [mset.Accumulator.Bytes] encoding does not identify the curve it was
// produced on; this package prefixes it with the curve ID (CBOR encoded) so
// that a hash serialized on one curve cannot be silently deserialized on
// another.
package encoding

import (
	"errors"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/mset"
	"github.com/fxamacker/cbor/v2"
)

var errInvalidCurve = errors.New("trying to deserialize a hash serialized with another curve")

// Write serializes the accumulator into a file.
func Write(path string, from mset.Accumulator) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from)
}

// Read deserializes an accumulator from a file, checking it was serialized
// on the expected curve.
func Read(path string, expectedCurveID ecc.ID) (mset.Accumulator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Deserialize(f, expectedCurveID)
}

// Serialize writes the accumulator into the provided writer.
// It encodes the curve ID in the first bytes.
func Serialize(writer io.Writer, from mset.Accumulator) error {
	encoder := cbor.NewEncoder(writer)

	// encode the curve type in the first bytes
	if err := encoder.Encode(from.Curve()); err != nil {
		return err
	}

	return encoder.Encode(from.Bytes())
}

// Deserialize reads an accumulator from the provided reader. The curve it
// was serialized on must match expectedCurveID and must be registered.
func Deserialize(reader io.Reader, expectedCurveID ecc.ID) (mset.Accumulator, error) {
	decoder := cbor.NewDecoder(reader)

	// decode the curve type, and ensure it matches
	var curveID ecc.ID
	if err := decoder.Decode(&curveID); err != nil {
		return nil, err
	}
	if curveID != expectedCurveID {
		return nil, errInvalidCurve
	}

	var raw []byte
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}

	return mset.AccumulatorFromBytes(curveID, raw)
}

// PeekCurveID reads the first bytes of the file and tries to decode and return the curveID
func PeekCurveID(path string) (ecc.ID, error) {
	reader, err := os.Open(path)
	if err != nil {
		return ecc.UNKNOWN, err
	}
	defer reader.Close()

	decoder := cbor.NewDecoder(reader)

	var curveID ecc.ID
	if err = decoder.Decode(&curveID); err != nil {
		return ecc.UNKNOWN, err
	}
	return curveID, nil
}
