// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package cmd is a CLI tool to build and combine multiset hashes
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/mset"
	_ "github.com/consensys/mset/all"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "mset",
	Short:   "mset builds homomorphic multiset hashes and combines them",
	Version: mset.Version.String(),
}

var fCurve string

func init() {
	rootCmd.PersistentFlags().StringVar(&fCurve, "curve", "bls12_381", "curve whose scalar field hosts the hash")
}

// Execute runs the root command; it is called once, from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}

func curveID(name string) (ecc.ID, error) {
	for _, id := range mset.Curves() {
		if strings.EqualFold(id.String(), name) {
			return id, nil
		}
	}
	return ecc.UNKNOWN, fmt.Errorf("unknown curve %q, supported: %v", name, mset.Curves())
}

// parseTerm splits "data:count" into its parts; a bare "data" has count 1.
func parseTerm(arg string) (string, uint64, error) {
	i := strings.LastIndexByte(arg, ':')
	if i < 0 {
		return arg, 1, nil
	}
	count, err := strconv.ParseUint(arg[i+1:], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid count in %q: %w", arg, err)
	}
	return arg[:i], count, nil
}

func decodeAccumulator(arg string) (mset.Accumulator, error) {
	id, err := curveID(fCurve)
	if err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hash %q: %w", arg, err)
	}
	return mset.AccumulatorFromBytes(id, data)
}

func printAccumulator(acc mset.Accumulator) {
	fmt.Println(hex.EncodeToString(acc.Bytes()))
}
