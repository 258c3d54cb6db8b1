package encoding

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/mset"
	_ "github.com/consensys/mset/all"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("deserialization(serialization(hash)) == hash", prop.ForAll(
		func(data []byte, count uint8) bool {
			acc, err := mset.NewAccumulator(ecc.BLS12_381)
			if err != nil {
				return false
			}
			if acc, err = acc.Insert(data, uint64(count)); err != nil {
				return false
			}

			var buff bytes.Buffer
			if err := Serialize(&buff, acc); err != nil {
				return false
			}
			result, err := Deserialize(&buff, ecc.BLS12_381)
			return err == nil && result.Equal(acc)
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCurveEncoding(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("using different curve ID in Serialize and Deserialize should fail", prop.ForAll(
		func(data []byte) bool {
			acc, err := mset.NewAccumulator(ecc.BN254)
			if err != nil {
				return false
			}
			if acc, err = acc.Insert(data, 1); err != nil {
				return false
			}

			var buff bytes.Buffer
			if err := Serialize(&buff, acc); err != nil {
				return false
			}
			_, err = Deserialize(&buff, ecc.BLS12_381)
			return err == errInvalidCurve
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPeekCurveID(t *testing.T) {
	acc, err := mset.NewAccumulator(ecc.BW6_761)
	if err != nil {
		t.Fatal(err)
	}

	path := t.TempDir() + "/hash.mset"
	if err := Write(path, acc); err != nil {
		t.Fatal(err)
	}

	id, err := PeekCurveID(path)
	if err != nil {
		t.Fatal(err)
	}
	if id != ecc.BW6_761 {
		t.Fatal("unexpected curve id", id)
	}
}
