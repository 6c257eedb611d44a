// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yakomaxa/showcolor"
	"github.com/yakomaxa/showcolor/scene"
)

func TestLabeledPath(t *testing.T) {
	tests := []struct {
		path, outDir, want string
	}{
		{"scene.json", "", "scene.labeled.json"},
		{"data/scene.json", "", "data/scene.labeled.json"},
		{"data/scene.json", "out", "out/scene.labeled.json"},
		{"scene", "", "scene.labeled.json"},
	}
	for _, tc := range tests {
		if got, want := labeledPath(tc.path, tc.outDir), filepath.FromSlash(tc.want); got != want {
			t.Errorf("labeledPath(%q, %q): got %q, want %q", tc.path, tc.outDir, got, want)
		}
	}
}

func TestLabelFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "demo.json")
	const snap = `{"models":[{"name":"1abc","atoms":[
	  {"index":1,"color":"red"},
	  {"index":2,"color":"#1f74c9"}
	]}]}`
	if err := os.WriteFile(src, []byte(snap), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := labelFile(src, "", false)
	if err != nil {
		t.Fatalf("labelFile: unexpected error: %v", err)
	}
	for _, want := range []string{"1abc\t1\tred", "1abc\t2\tUnknown", "Labeled 2 atoms"} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}

	f, err := os.Open(filepath.Join(dir, "demo.labeled.json"))
	if err != nil {
		t.Fatalf("labeled snapshot: %v", err)
	}
	defer f.Close()
	sc, err := scene.Load(f)
	if err != nil {
		t.Fatalf("Load labeled snapshot: %v", err)
	}
	labels := sc.Labels()
	if got := labels[showcolor.Selection{Model: "1abc", Index: 1}]; got != "red" {
		t.Errorf("atom 1 label: got %q, want %q", got, "red")
	}
	if got := labels[showcolor.Selection{Model: "1abc", Index: 2}]; got != showcolor.Unknown {
		t.Errorf("atom 2 label: got %q, want %q", got, showcolor.Unknown)
	}
}
