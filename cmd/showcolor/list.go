// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/mds/slice"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/yakomaxa/showcolor"
)

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		all       = fs.Bool("all", false, "List the merged table (the default)")
		namedOnly = fs.Bool("named", false, "List only the named-color table")
		elemOnly  = fs.Bool("element", false, "List only the chemical-element table")
		showHex   = fs.Bool("hex", false, "Include hex values")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *namedOnly && *elemOnly || *all && (*namedOnly || *elemOnly) {
		return errors.New("list: -all, -named, and -element are mutually exclusive")
	}

	var entries []showcolor.Entry
	switch {
	case *namedOnly:
		entries = showcolor.NamedColors()
	case *elemOnly:
		entries = showcolor.ElementColors()
	default:
		// The merged view groups the named table ahead of the elements,
		// alphabetical within each group.
		entries = showcolor.Entries()
		named := slice.Partition(entries, func(e showcolor.Entry) bool {
			return e.Source == showcolor.SourceNamed
		})
		byName := func(a, b showcolor.Entry) int { return strings.Compare(a.Name, b.Name) }
		slices.SortFunc(named, byName)
		slices.SortFunc(entries[len(named):], byName)
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if tty && !*showHex {
		printGrid(entries, terminalWidth(int(os.Stdout.Fd())))
		return nil
	}

	for _, e := range entries {
		var sb strings.Builder
		if tty {
			sb.WriteString(swatchBlock(e.Key) + " ")
		}
		fmt.Fprintf(&sb, "%-14s", e.Name)
		if *showHex {
			fmt.Fprintf(&sb, "  %s", e.Key.Hex())
		}
		fmt.Fprintf(&sb, "  %s", e.Source)
		fmt.Println(sb.String())
	}
	return nil
}

// printGrid packs swatch cells into as many columns as the terminal
// width allows. The longest table name is 13 runes, so a cell is the
// 3-wide swatch plus a 14-wide name column and a gap.
func printGrid(entries []showcolor.Entry, width int) {
	const cell = 3 + 14 + 1
	cols := width / cell
	if cols < 1 {
		cols = 1
	}
	for i, e := range entries {
		fmt.Printf("%s %-14s", swatchBlock(e.Key), e.Name)
		if (i+1)%cols == 0 || i == len(entries)-1 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
}

// swatchBlock renders a two-cell truecolor block in c.
func swatchBlock(c showcolor.Color) string {
	r := byte(c.R() * 255)
	g := byte(c.G() * 255)
	b := byte(c.B() * 255)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}

// terminalWidth reports the column count of the terminal on fd, or 80
// if it cannot be determined.
func terminalWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
