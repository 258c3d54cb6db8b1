// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// unionCmd represents the union command
var unionCmd = &cobra.Command{
	Use:   "union [hash] [hash]...",
	Short: "combines hex-encoded hashes into the hash of the multiset union",
	Run:   cmdUnion,
}

func init() {
	rootCmd.AddCommand(unionCmd)
}

func cmdUnion(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println("missing hashes -- mset union -h for help")
		os.Exit(-1)
	}

	acc, err := decodeAccumulator(args[0])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	for _, arg := range args[1:] {
		other, err := decodeAccumulator(arg)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		if acc, err = acc.Union(other); err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
	}

	printAccumulator(acc)
}
