// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Package labeler applies color-name labels to every atom of a host
// scene.
//
// Importing this package registers the "show_color" command, so front
// ends that dispatch through the command registry pick it up without
// importing this package directly anywhere else.
package labeler

import (
	"fmt"

	"github.com/yakomaxa/showcolor"
	"github.com/yakomaxa/showcolor/command"
)

// Command is the name the labeling pass is registered under.
const Command = "show_color"

func init() {
	command.Register(Command, func(h showcolor.Host) error {
		_, err := LabelAll(h)
		return err
	})
}

// LabelAll takes a snapshot of the displayed atoms of h, resolves each
// atom's color to a name, and sets that name as the atom's label. Every
// atom receives a label; colors the table does not know are labeled
// "Unknown". The pass stops at the first host failure, leaving the
// labels issued so far in place, and reports the number of atoms it
// labeled. After a full pass a confirmation line is printed to the host
// console.
func LabelAll(h showcolor.Host) (int, error) {
	atoms, err := h.Atoms()
	if err != nil {
		return 0, fmt.Errorf("listing atoms: %w", err)
	}
	var n int
	for _, a := range atoms {
		sel := showcolor.Select(a)
		rgb, err := h.ColorTuple(a.Color)
		if err != nil {
			return n, fmt.Errorf("color of %v: %w", sel, err)
		}
		name := showcolor.Resolve(rgb)
		if err := h.Label(sel, showcolor.Quote(name)); err != nil {
			return n, fmt.Errorf("labeling %v: %w", sel, err)
		}
		n++
	}
	h.Print(fmt.Sprintf("Labeled %d atoms with their color names.", n))
	return n, nil
}
