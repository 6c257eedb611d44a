// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Package swatch renders color table entries as a labeled chart image.
package swatch

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/yakomaxa/showcolor"
)

// Preloaded font definition.
var goRegular *truetype.Font

func init() {
	var err error
	goRegular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("Parsing font: %v", err))
	}
}

// fontForSize constructs a new font.Face for the specified point size.
func fontForSize(points float64) font.Face {
	return truetype.NewFace(goRegular, &truetype.Options{Size: points})
}

// Options are optional layout settings for Render. A nil *Options is
// ready for use with default values.
type Options struct {
	// Number of cells per row. Default: 4.
	Columns int

	// Size of one cell in pixels. Default: 260 by 56.
	CellWidth  int
	CellHeight int
}

func (o *Options) columns() int {
	if o == nil || o.Columns <= 0 {
		return 4
	}
	return o.Columns
}

func (o *Options) cellWidth() int {
	if o == nil || o.CellWidth <= 0 {
		return 260
	}
	return o.CellWidth
}

func (o *Options) cellHeight() int {
	if o == nil || o.CellHeight <= 0 {
		return 56
	}
	return o.CellHeight
}

// Render draws one cell per entry, in entry order, into a grid image: a
// filled block of the entry's color with the name, hex value, and source
// table beside it. A nil *Options provides default settings (see
// [Options]).
func Render(entries []showcolor.Entry, opts *Options) image.Image {
	cols := opts.columns()
	cw, ch := opts.cellWidth(), opts.cellHeight()
	rows := (len(entries) + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}

	dc := gg.NewContext(cols*cw, rows*ch)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	nameFace := fontForSize(0.25 * float64(ch))
	hexFace := fontForSize(0.2 * float64(ch))

	const margin = 8
	block := float64(ch - 2*margin)
	for i, e := range entries {
		x := float64(i % cols * cw)
		y := float64(i / cols * ch)

		dc.SetRGB(e.Key.R(), e.Key.G(), e.Key.B())
		dc.DrawRectangle(x+margin, y+margin, block, block)
		dc.Fill()

		tx := x + margin + block + margin
		dc.SetFontFace(nameFace)
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(e.Name, tx, y+0.38*float64(ch), 0, 0.5)

		dc.SetFontFace(hexFace)
		dc.SetRGB(0.45, 0.45, 0.45)
		detail := fmt.Sprintf("%s %s", e.Key.Hex(), e.Source)
		dc.DrawStringAnchored(detail, tx, y+0.68*float64(ch), 0, 0.5)
	}
	return dc.Image()
}
