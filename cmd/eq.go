// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// eqCmd represents the eq command
var eqCmd = &cobra.Command{
	Use:   "eq [hash] [hash]",
	Short: "reports whether two hex-encoded hashes commit to the same multiset",
	Run:   cmdEq,
}

func init() {
	rootCmd.AddCommand(eqCmd)
}

func cmdEq(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("expected two hashes -- mset eq -h for help")
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

	if !a.Equal(b) {
		fmt.Println("hashes differ")
		os.Exit(1)
	}
	fmt.Println("hashes are equal")
}
