package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "consensys/mset")

type templateData struct {
	RootPath string
	Package  string
	Curve    string
	CurveID  string
}

//go:generate go run main.go
func main() {

	bn254 := templateData{
		RootPath: "../../bn254/",
		Package:  "bn254",
		Curve:    "BN254",
		CurveID:  "BN254",
	}
	bls12_377 := templateData{
		RootPath: "../../bls12377/",
		Package:  "bls12377",
		Curve:    "BLS12-377",
		CurveID:  "BLS12_377",
	}
	bls12_381 := templateData{
		RootPath: "../../bls12381/",
		Package:  "bls12381",
		Curve:    "BLS12-381",
		CurveID:  "BLS12_381",
	}
	bw6_761 := templateData{
		RootPath: "../../bw6761/",
		Package:  "bw6761",
		Curve:    "BW6-761",
		CurveID:  "BW6_761",
	}

	datas := []templateData{
		bn254,
		bls12_377,
		bls12_381,
		bw6_761,
	}

	const importCurve = "imports.go.tmpl"

	var wg sync.WaitGroup

	for _, d := range datas {

		wg.Add(1)

		go func(d templateData) {

			defer wg.Done()

			if err := os.MkdirAll(d.RootPath, 0700); err != nil {
				panic(err)
			}

			entries := []bavard.Entry{
				{File: filepath.Join(d.RootPath, "multiset.go"), Templates: []string{"multiset.go.tmpl", importCurve}},
				{File: filepath.Join(d.RootPath, "accumulator.go"), Templates: []string{"accumulator.go.tmpl", importCurve}},
			}
			if err := bgen.Generate(d, d.Package, "./template/", entries...); err != nil {
				panic(err)
			}

			entries = []bavard.Entry{
				{File: filepath.Join(d.RootPath, "multiset_test.go"), Templates: []string{"tests/multiset.go.tmpl", importCurve}},
			}
			if err := bgen.Generate(d, d.Package+"_test", "./template/", entries...); err != nil {
				panic(err)
			}

		}(d)

	}

	wg.Wait()

	// run go fmt on whole directory
	cmd := exec.Command("gofmt", "-s", "-w", "../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

}
