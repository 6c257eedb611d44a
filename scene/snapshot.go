// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yakomaxa/showcolor"
)

// The JSON exchange format for scenes. Colors pass through the name
// aware text codec, so snapshots read "carbon" or "#1f74c9" rather than
// raw triples.
type snapshot struct {
	Models []snapshotModel `json:"models"`
}

type snapshotModel struct {
	Name  string         `json:"name"`
	Atoms []snapshotAtom `json:"atoms"`
}

type snapshotAtom struct {
	Index int             `json:"index"`
	Color showcolor.Color `json:"color"`
	Label string          `json:"label,omitempty"`
}

// Load reads a JSON scene snapshot from r. Unknown fields are an error,
// so a misspelled key fails the load instead of silently dropping data.
func Load(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var snap snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	s := New()
	for _, sm := range snap.Models {
		m := s.model(sm.Name)
		for _, sa := range sm.Atoms {
			s.Add(sm.Name, sa.Index, sa.Color)
			if sa.Label != "" {
				m.byIndex[sa.Index].label = sa.Label
			}
		}
	}
	return s, nil
}

// WriteTo writes s as an indented JSON snapshot to w. It implements
// io.WriterTo.
func (s *Scene) WriteTo(w io.Writer) (int64, error) {
	snap := snapshot{Models: make([]snapshotModel, 0, len(s.models))}
	for _, m := range s.models {
		sm := snapshotModel{Name: m.name, Atoms: make([]snapshotAtom, 0, len(m.atoms))}
		for _, a := range m.atoms {
			sm.Atoms = append(sm.Atoms, snapshotAtom{
				Index: a.index,
				Color: s.palette[a.color],
				Label: a.label,
			})
		}
		snap.Models = append(snap.Models, sm)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
