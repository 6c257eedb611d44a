// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/creachadair/taskgroup"

	"github.com/yakomaxa/showcolor"
	"github.com/yakomaxa/showcolor/command"
	"github.com/yakomaxa/showcolor/labeler"
	"github.com/yakomaxa/showcolor/scene"
)

func cmdLabel(args []string) error {
	fs := flag.NewFlagSet("label", flag.ExitOnError)
	var (
		quiet = fs.Bool("q", false, "Do not print the per-atom labels")

		// By default each labeled snapshot is written next to its input
		// as <name>.labeled.json.
		outDir = fs.String("o", "", "Directory for labeled snapshots")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("label: at least one snapshot file is required")
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
	}

	if len(files) == 1 {
		text, err := labelFile(files[0], *outDir, *quiet)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	// Batches run on a bounded pool. Failures are reported per snapshot
	// and the rest keep going.
	var mu sync.Mutex
	var failed int
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for _, path := range files {
		path := path // capture per iteration; this module builds as go 1.21
		run.Run(func() {
			text, err := labelFile(path, *outDir, *quiet)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				log.Printf("ERROR: %v", err)
				return
			}
			fmt.Printf("== %s\n%s", path, text)
		})
	}
	g.Wait()
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed", failed, len(files))
	}
	return nil
}

// labelFile loads one snapshot, runs the labeling pass against it, and
// writes the labeled snapshot. It returns the text to show for the
// file: unless quiet, one line per atom, then the host console output
// and the output path.
func labelFile(path, outDir string, quiet bool) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	sc, err := scene.Load(in)
	in.Close()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	var console strings.Builder
	sc.Output = &console
	if err := command.Run(labeler.Command, sc); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	outPath := labeledPath(path, outDir)
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	if _, err := sc.WriteTo(out); err != nil {
		out.Close()
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	var buf strings.Builder
	if !quiet {
		atoms, err := sc.Atoms()
		if err != nil {
			return "", err
		}
		labels := sc.Labels()
		for _, a := range atoms {
			fmt.Fprintf(&buf, "%s\t%d\t%s\n", a.Model, a.Index, labels[showcolor.Select(a)])
		}
	}
	buf.WriteString(console.String())
	fmt.Fprintf(&buf, "wrote %s\n", outPath)
	return buf.String(), nil
}

// labeledPath derives the output path for a labeled snapshot:
// "scene.json" becomes "scene.labeled.json", next to the input unless
// outDir is set.
func labeledPath(path, outDir string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".json"
	}
	base = strings.TrimSuffix(base, ext) + ".labeled" + ext
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(path), base)
}
