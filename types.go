// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Package showcolor maps the colors a molecular viewer assigns to its
// displayed atoms back to human-readable color names.
//
// This package defines the shared data types and the merged reverse
// color table used throughout the module. The table itself lives in
// colors.go; the labeling pass that applies it to a live scene is in the
// labeler package.
package showcolor

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// A Color is an RGB triple with channel intensities in [0, 1]. It
// supports encoding in JSON as a string, allowing any color name known
// to the lookup tables, or "#xxxxxx" or "#xxx" hex format (the "#" is
// optional).
type Color [3]float64

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// Round returns c with each channel independently rounded to three
// decimal places, the precision the lookup tables are expressed at.
// Host color queries report channels with float32 noise; rounding both
// sides at the same precision keeps them matching.
func (c Color) Round() Color {
	return Color{round3(c[0]), round3(c[1]), round3(c[2])}
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// Hex returns c as a hex string in standard web RGB format (#xxxxxx).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		byte(c[0]*255), byte(c[1]*255), byte(c[2]*255))
}

func (c Color) MarshalText() ([]byte, error) {
	// Prefer the table name; hex is the fallback for colors the tables
	// do not know.
	if name, ok := merged[c.Round()]; ok {
		return []byte(name), nil
	}
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	// As a special case, treat an empty string as "white".
	if len(data) == 0 {
		c[0], c[1], c[2] = 1, 1, 1
		return nil
	}
	p := string(data)

	// Check for a name mapping.
	if v, ok := byName[p]; ok {
		*c = v
		return nil
	}

	p = strings.TrimPrefix(p, "#")
	var r, g, b byte
	var err error
	switch len(p) {
	case 3:
		_, err = fmt.Sscanf(p, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(p, "%2x%2x%2x", &r, &g, &b)
	default:
		return errors.New("invalid hex color")
	}
	if err != nil {
		return err
	}
	c[0], c[1], c[2] = float64(r)/255, float64(g)/255, float64(b)/255
	return nil
}

// MustColor constructs a color from a known color name or hex
// specification #xxx or #xxxxxx. It panics if s does not correspond to
// a valid color.
func MustColor(s string) Color {
	var c Color
	if err := c.UnmarshalText([]byte(s)); err != nil {
		panic("invalid color: " + err.Error())
	}
	return c
}

// A ColorRef is an opaque handle to a color owned by the host. Its
// channel values can only be learned through Host.ColorTuple.
type ColorRef int

// An Atom describes one displayed atom as enumerated by the host: the
// model it belongs to, its index within that model, and the handle of
// its assigned color.
type Atom struct {
	Model string
	Index int
	Color ColorRef
}

// A Selection addresses exactly one atom for a labeling side effect.
// Selections are constructed, never parsed; the host's full selection
// language stays on the host's side of the fence.
type Selection struct {
	Model string
	Index int
}

// Select returns the selection addressing a.
func Select(a Atom) Selection { return Selection{Model: a.Model, Index: a.Index} }

// String renders the host selection expression for s.
func (s Selection) String() string {
	return fmt.Sprintf("model %s and index %d", s.Model, s.Index)
}

// Quote renders s as a label text expression, the single-quoted string
// literal the host's label command evaluates.
func Quote(s string) string { return "'" + s + "'" }

// Host is the collaborator interface onto the molecular viewer. The
// scene it exposes is externally owned: callers read it (Atoms,
// ColorTuple) and mutate it only through label assignment. The host
// serializes command execution, so implementations need not tolerate
// concurrent calls.
type Host interface {
	// Atoms returns a snapshot of every currently displayed atom.
	Atoms() ([]Atom, error)

	// ColorTuple converts a color handle to its RGB triple.
	ColorTuple(ref ColorRef) (Color, error)

	// Label sets the displayed label of the atom matched by sel to the
	// result of evaluating the label text expression expr.
	Label(sel Selection, expr string) error

	// Print writes a line to the host's console.
	Print(msg string)
}
