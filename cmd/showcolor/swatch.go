// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/yakomaxa/showcolor"
	"github.com/yakomaxa/showcolor/swatch"
)

func cmdSwatch(args []string) error {
	fs := flag.NewFlagSet("swatch", flag.ExitOnError)
	var (
		cols      = fs.Int("cols", 4, "Cells per row")
		outPath   = fs.String("o", "colors.png", "Output image path")
		namedOnly = fs.Bool("named", false, "Chart only the named-color table")
		elemOnly  = fs.Bool("element", false, "Chart only the chemical-element table")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *namedOnly && *elemOnly {
		return errors.New("swatch: -named and -element are mutually exclusive")
	}

	var entries []showcolor.Entry
	switch {
	case *namedOnly:
		entries = showcolor.NamedColors()
	case *elemOnly:
		entries = showcolor.ElementColors()
	default:
		entries = showcolor.Entries()
	}

	img := swatch.Render(entries, &swatch.Options{Columns: *cols})
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", *outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%d colors)", *outPath, len(entries))
	return nil
}
