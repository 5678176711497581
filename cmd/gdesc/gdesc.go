// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gdesc builds sample graphics descriptions and prints
// a summary of their shapes, meshes and appearances.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/gdesc/export"
	"cogentcore.org/gdesc/graph"
	"cogentcore.org/gdesc/mesh"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the gdesc cli.
type Config struct {

	// Scene is the name of the sample scene to describe.
	Scene string `posarg:"0" required:"-" default:"robot"`

	// Format is the summary format: yaml or toml.
	Format string `flag:"f,format" default:"yaml"`

	// Output is the file to write the summary to; standard output if empty.
	Output string `flag:"o,output"`

	// Resolution is the number of divisions used for curved surfaces.
	Resolution mesh.Resolution

	// Verbose enables debug level logging.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	cli.Run(options(), &Config{}, commands()...)
}

func options() *cli.Options {
	return cli.DefaultOptions("gdesc", "Gdesc builds sample graphics descriptions and prints a summary of them.")
}

// commands returns the commands of the gdesc cli, with [Describe] as the root.
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Describe, Name: "describe", Doc: "Describe builds the sample scene and writes its summary.", Root: true},
		{Func: List, Name: "list", Doc: "List lists the available sample scenes."},
	}
}

// Describe builds the sample scene and writes its summary.
func Describe(c *Config) error {
	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	build, ok := scenes[c.Scene]
	if !ok {
		return fmt.Errorf("unknown scene %q; available scenes: %s", c.Scene, strings.Join(sceneNames(), ", "))
	}
	g := graph.New()
	if err := g.SetResolution(c.Resolution); err != nil {
		return err
	}
	if err := build(g); err != nil {
		return fmt.Errorf("building scene %q: %w", c.Scene, err)
	}
	g.Freeze()
	slog.Debug("built scene", "scene", c.Scene, "instructions", g.Len())
	sm := export.Summarize(g)

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer func() { errors.Log(f.Close()) }()
		w = f
	} else {
		out := termenv.NewOutput(os.Stdout)
		title := out.String(fmt.Sprintf("# %s: %d shapes", c.Scene, sm.Shapes)).Bold()
		fmt.Fprintln(w, title)
	}
	switch strings.ToLower(c.Format) {
	case "yaml", "yml":
		return sm.WriteYAML(w)
	case "toml":
		return sm.WriteTOML(w)
	}
	return fmt.Errorf("unknown format %q: must be yaml or toml", c.Format)
}

// List lists the available sample scenes.
func List(c *Config) error {
	out := termenv.NewOutput(os.Stdout)
	for _, nm := range sceneNames() {
		fmt.Println(out.String(nm).Bold(), "\t", sceneDocs[nm])
	}
	return nil
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for nm := range scenes {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}
