// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yakomaxa/showcolor"
	"github.com/yakomaxa/showcolor/labeler"
)

func TestAddAndAtoms(t *testing.T) {
	s := New()
	r1 := s.Add("1abc", 1, showcolor.Color{1, 0, 0})
	r2 := s.Add("1abc", 2, showcolor.Color{0, 0, 1})
	r3 := s.Add("2xyz", 1, showcolor.Color{1, 0, 0})

	// Equal triples intern to the same handle.
	if r1 != r3 {
		t.Errorf("interning: got refs %d and %d for the same color", r1, r3)
	}
	if r1 == r2 {
		t.Errorf("interning: got ref %d for two different colors", r1)
	}

	atoms, err := s.Atoms()
	if err != nil {
		t.Fatalf("Atoms: unexpected error: %v", err)
	}
	want := []showcolor.Atom{
		{Model: "1abc", Index: 1, Color: r1},
		{Model: "1abc", Index: 2, Color: r2},
		{Model: "2xyz", Index: 1, Color: r3},
	}
	if diff := cmp.Diff(want, atoms); diff != "" {
		t.Errorf("Atoms (-want, +got):\n%s", diff)
	}

	c, err := s.ColorTuple(r2)
	if err != nil {
		t.Fatalf("ColorTuple(%d): unexpected error: %v", r2, err)
	}
	if got, want := c, (showcolor.Color{0, 0, 1}); got != want {
		t.Errorf("ColorTuple(%d): got %v, want %v", r2, got, want)
	}

	if got, want := s.Models(), []string{"1abc", "2xyz"}; !cmp.Equal(want, got) {
		t.Errorf("Models: got %v, want %v", got, want)
	}
}

func TestColorTupleRange(t *testing.T) {
	s := New()
	s.Add("m", 1, showcolor.Color{1, 1, 1})
	for _, ref := range []showcolor.ColorRef{-1, 1, 99} {
		if _, err := s.ColorTuple(ref); err == nil {
			t.Errorf("ColorTuple(%d): expected an error", ref)
		}
	}
}

func TestLabel(t *testing.T) {
	s := New()
	s.Add("1abc", 1, showcolor.Color{1, 0, 0})
	s.Add("1abc", 2, showcolor.Color{0, 0, 1})

	if err := s.Label(showcolor.Selection{Model: "1abc", Index: 1}, "'red'"); err != nil {
		t.Fatalf("Label: unexpected error: %v", err)
	}
	if err := s.Label(showcolor.Selection{Model: "1abc", Index: 2}, `"blue"`); err != nil {
		t.Fatalf("Label: unexpected error: %v", err)
	}

	want := map[showcolor.Selection]string{
		{Model: "1abc", Index: 1}: "red",
		{Model: "1abc", Index: 2}: "blue",
	}
	if diff := cmp.Diff(want, s.Labels()); diff != "" {
		t.Errorf("Labels (-want, +got):\n%s", diff)
	}
}

func TestLabelErrors(t *testing.T) {
	s := New()
	s.Add("1abc", 1, showcolor.Color{1, 0, 0})

	tests := []struct {
		sel  showcolor.Selection
		expr string
	}{
		{showcolor.Selection{Model: "nope", Index: 1}, "'x'"},   // unknown model
		{showcolor.Selection{Model: "1abc", Index: 9}, "'x'"},   // unknown index
		{showcolor.Selection{Model: "1abc", Index: 1}, "bare"},  // not a literal
		{showcolor.Selection{Model: "1abc", Index: 1}, `'mix"`}, // mismatched quotes
		{showcolor.Selection{Model: "1abc", Index: 1}, "'"},     // too short
		{showcolor.Selection{Model: "1abc", Index: 1}, ""},      // empty
	}
	for _, tc := range tests {
		if err := s.Label(tc.sel, tc.expr); err == nil {
			t.Errorf("Label(%v, %q): expected an error", tc.sel, tc.expr)
		}
	}
	if n := len(s.Labels()); n != 0 {
		t.Errorf("Labels after failed assignments: got %d entries, want 0", n)
	}
}

func TestRecolorClearsLabel(t *testing.T) {
	s := New()
	s.Add("m", 1, showcolor.Color{1, 0, 0})
	if err := s.Label(showcolor.Selection{Model: "m", Index: 1}, "'red'"); err != nil {
		t.Fatalf("Label: unexpected error: %v", err)
	}

	s.Add("m", 1, showcolor.Color{0, 0, 1})
	if n := len(s.Labels()); n != 0 {
		t.Errorf("Labels after recolor: got %d entries, want 0", n)
	}
	atoms, err := s.Atoms()
	if err != nil {
		t.Fatalf("Atoms: unexpected error: %v", err)
	}
	if len(atoms) != 1 {
		t.Fatalf("Atoms after recolor: got %d, want 1", len(atoms))
	}
	c, err := s.ColorTuple(atoms[0].Color)
	if err != nil {
		t.Fatalf("ColorTuple: unexpected error: %v", err)
	}
	if got, want := c, (showcolor.Color{0, 0, 1}); got != want {
		t.Errorf("recolored atom: got %v, want %v", got, want)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	s := New()
	s.Output = &buf
	s.Print("hello from the scene")
	if got, want := buf.String(), "hello from the scene\n"; got != want {
		t.Errorf("Print: got %q, want %q", got, want)
	}
}

func TestHostIntegration(t *testing.T) {
	// A scene is a usable host for the labeling pass end to end.
	var buf bytes.Buffer
	s := New()
	s.Output = &buf
	s.Add("1abc", 1, showcolor.MustColor("red"))
	s.Add("1abc", 2, showcolor.Color{0.2, 1, 0.2})
	s.Add("2xyz", 7, showcolor.Color{0.123, 0.456, 0.789})

	n, err := labeler.LabelAll(s)
	if err != nil {
		t.Fatalf("LabelAll: unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("LabelAll: labeled %d atoms, want 3", n)
	}

	want := map[showcolor.Selection]string{
		{Model: "1abc", Index: 1}: "red",
		{Model: "1abc", Index: 2}: "carbon",
		{Model: "2xyz", Index: 7}: showcolor.Unknown,
	}
	if diff := cmp.Diff(want, s.Labels()); diff != "" {
		t.Errorf("Labels (-want, +got):\n%s", diff)
	}
	if got, want := buf.String(), "Labeled 3 atoms with their color names.\n"; got != want {
		t.Errorf("Console output: got %q, want %q", got, want)
	}
}

const snapJSON = `{
  "models": [
    {
      "name": "1abc",
      "atoms": [
        {"index": 1, "color": "red", "label": "red"},
        {"index": 2, "color": "carbon"},
        {"index": 3, "color": "sulfur"}
      ]
    },
    {
      "name": "2xyz",
      "atoms": [
        {"index": 1, "color": "hydrogen"}
      ]
    }
  ]
}`

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := Load(strings.NewReader(snapJSON))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	var dump bytes.Buffer
	if _, err := s.WriteTo(&dump); err != nil {
		t.Fatalf("WriteTo: unexpected error: %v", err)
	}
	// Colors are written back through the name codec.
	for _, want := range []string{`"color": "red"`, `"color": "carbon"`, `"label": "red"`} {
		if !strings.Contains(dump.String(), want) {
			t.Errorf("snapshot is missing %s:\n%s", want, dump.String())
		}
	}

	s2, err := Load(bytes.NewReader(dump.Bytes()))
	if err != nil {
		t.Fatalf("Load(dump): unexpected error: %v", err)
	}

	a1, err := s.Atoms()
	if err != nil {
		t.Fatalf("Atoms: unexpected error: %v", err)
	}
	a2, err := s2.Atoms()
	if err != nil {
		t.Fatalf("Atoms: unexpected error: %v", err)
	}
	if diff := cmp.Diff(a1, a2); diff != "" {
		t.Errorf("Atoms changed across the round trip (-first, +second):\n%s", diff)
	}
	if diff := cmp.Diff(s.Labels(), s2.Labels()); diff != "" {
		t.Errorf("Labels changed across the round trip (-first, +second):\n%s", diff)
	}
	if diff := cmp.Diff(s.Models(), s2.Models()); diff != "" {
		t.Errorf("Models changed across the round trip (-first, +second):\n%s", diff)
	}

	// Named colors make the dump a fixed point.
	var dump2 bytes.Buffer
	if _, err := s2.WriteTo(&dump2); err != nil {
		t.Fatalf("WriteTo: unexpected error: %v", err)
	}
	if !bytes.Equal(dump.Bytes(), dump2.Bytes()) {
		t.Errorf("re-dump differs:\n--- first\n%s\n--- second\n%s", dump.String(), dump2.String())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"models": [`},
		{"unknown field", `{"models": [{"name": "m", "atmos": []}]}`},
		{"bad color", `{"models": [{"name": "m", "atoms": [{"index": 1, "color": "nope"}]}]}`},
	}
	for _, tc := range tests {
		if _, err := Load(strings.NewReader(tc.input)); err == nil {
			t.Errorf("Load %s: expected an error", tc.name)
		}
	}
}
