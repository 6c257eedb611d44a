// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

// Package command is a registry of named host commands.
//
// Packages that provide a command register it from an init function, in
// the manner of database/sql drivers, and the host front end dispatches
// on the registered name. The registry exists so command providers and
// front ends do not have to import each other.
package command

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/yakomaxa/showcolor"
)

// A Func is the implementation of a host command. It receives the host
// whose scene the command operates on.
type Func func(h showcolor.Host) error

var (
	mu       sync.RWMutex
	commands = make(map[string]Func)
)

// Register makes a command available under the given name. It is
// intended to be called from an init function, and panics if name is
// empty, fn is nil, or name is already taken.
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		panic("command: Register with empty name")
	}
	if fn == nil {
		panic("command: Register with nil func for " + name)
	}
	if _, dup := commands[name]; dup {
		panic("command: Register called twice for " + name)
	}
	commands[name] = fn
}

// Run invokes the command registered under name against h.
func Run(name string, h showcolor.Host) error {
	mu.RLock()
	fn, ok := commands[name]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return fn(h)
}

// Names reports the names of all registered commands, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := maps.Keys(commands)
	slices.Sort(names)
	return names
}
