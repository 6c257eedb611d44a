// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/yakomaxa/showcolor"
)

func cmdResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	near := fs.Bool("near", false, "Also suggest the nearest table entry on a miss")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return errors.New("resolve: expected exactly three channel values (r g b)")
	}

	var c showcolor.Color
	for i, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("channel %d: %v out of range [0, 1]", i, v)
		}
		c[i] = v
	}

	name := showcolor.Resolve(c)
	fmt.Println(name)
	if name == showcolor.Unknown && *near {
		n, d := showcolor.Nearest(c)
		fmt.Printf("nearest: %s (distance %.2f)\n", n, d)
	}
	return nil
}
