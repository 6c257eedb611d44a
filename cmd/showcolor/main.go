// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Program showcolor labels the atoms of molecular scene snapshots with
// the names of their display colors.
//
// It is a host front end for the labeling pass: scenes are loaded from
// JSON snapshots, the registered show_color command runs against them,
// and the labeled scenes are written back out. The reverse color tables
// are also browsable directly (list, resolve, swatch).
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("showcolor: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "label":
		err = cmdLabel(os.Args[2:])
	case "resolve":
		err = cmdResolve(os.Args[2:])
	case "list":
		err = cmdList(os.Args[2:])
	case "swatch":
		err = cmdSwatch(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %[1]s <command> [flags] [args]

Label the atoms of molecular scene snapshots with the names of their
display colors, and browse the reverse color tables the names come from.

Commands:
  label    [-q] [-o dir] file.json...    Run the labeling pass on snapshots
  resolve  [-near] r g b                 Resolve one RGB triple to a name
  list     [-all|-named|-element] [-hex] Print the color tables
  swatch   [-cols n] [-o file]           Render the tables as a PNG chart

Run %[1]s <command> -h for the flags of a command.
`, filepath.Base(os.Args[0]))
}
