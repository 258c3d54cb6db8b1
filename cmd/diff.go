// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff [hash] [hash]",
	Short: "computes the hash of the multiset difference of two hex-encoded hashes",
	Run:   cmdDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func cmdDiff(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("expected two hashes -- mset diff -h for help")
		os.Exit(-1)
	}

	a, err := decodeAccumulator(args[0])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	b, err := decodeAccumulator(args[1])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	res, err := a.Difference(b)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	printAccumulator(res)
}
