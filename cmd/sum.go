// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/mset"
	"github.com/spf13/cobra"
)

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum [data:count]...",
	Short: "hashes a multiset given as data:count terms (count defaults to 1)",
	Run:   cmdSum,
}

var (
	fRemove     []string
	fInputPath  string
	fOutputPath string
	fRaw        bool
)

func init() {
	rootCmd.AddCommand(sumCmd)
	sumCmd.PersistentFlags().StringArrayVar(&fRemove, "remove", nil, "data:count term to remove; may be repeated")
	sumCmd.PersistentFlags().StringVar(&fInputPath, "input", "", "specifies full path for a file of newline-delimited records, one per line (\"-\" reads stdin)")
	sumCmd.PersistentFlags().StringVar(&fOutputPath, "output", "", "specifies full path for the resulting hash -- default is stdout")
	sumCmd.PersistentFlags().BoolVar(&fRaw, "raw", false, "writes the raw field element instead of hex")
}

func cmdSum(cmd *cobra.Command, args []string) {
	if len(args) == 0 && len(fRemove) == 0 && fInputPath == "" {
		fmt.Println("missing terms -- mset sum -h for help")
		os.Exit(-1)
	}

	id, err := curveID(fCurve)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	acc, err := mset.NewAccumulator(id)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	if fInputPath != "" {
		in := os.Stdin
		if fInputPath != "-" {
			f, err := os.Open(fInputPath)
			if err != nil {
				fmt.Println("error:", err)
				os.Exit(-1)
			}
			defer f.Close()
			in = f
		}
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if acc, err = acc.Insert([]byte(line), 1); err != nil {
				fmt.Println("error:", err)
				os.Exit(-1)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
	}

	for _, arg := range args {
		data, count, err := parseTerm(arg)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		if acc, err = acc.Insert([]byte(data), count); err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
	}
	for _, arg := range fRemove {
		data, count, err := parseTerm(arg)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		if acc, err = acc.Remove([]byte(data), count); err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
	}

	out := []byte(hex.EncodeToString(acc.Bytes()) + "\n")
	if fRaw {
		out = acc.Bytes()
	}
	if fOutputPath == "" {
		_, _ = os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(fOutputPath, out, 0600); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}
