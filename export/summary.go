// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/graph"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Summary is a human readable overview of a graph, for
// inspection and for comparing graphs in tests.
type Summary struct {

	// Instructions has the number of instructions of each kind,
	// including those of sub-graphs.
	Instructions map[string]int `yaml:"instructions" toml:"instructions"`

	// Shapes is the number of placed shapes.
	Shapes int `yaml:"shapes" toml:"shapes"`

	// Vertices is the total number of vertices of all shapes.
	Vertices int `yaml:"vertices" toml:"vertices"`

	// Triangles is the total number of triangles of all shapes.
	Triangles int `yaml:"triangles" toml:"triangles"`

	// SurfaceArea is the total world-space area of all shapes.
	SurfaceArea float32 `yaml:"surfaceArea" toml:"surfaceArea"`

	// Min is the minimum corner of the world-space bounding box.
	Min [3]float32 `yaml:"min,flow" toml:"min"`

	// Max is the maximum corner of the world-space bounding box.
	Max [3]float32 `yaml:"max,flow" toml:"max"`

	// Meshes has the names of the unique meshes.
	Meshes []string `yaml:"meshes" toml:"meshes"`

	// Appearances has the unique appearances.
	Appearances []AppearanceSummary `yaml:"appearances" toml:"appearances"`

	// Instances has the placed shapes.
	Instances []InstanceSummary `yaml:"instances" toml:"instances"`
}

// AppearanceSummary describes one appearance of a [Summary].
type AppearanceSummary struct {
	Name      string  `yaml:"name" toml:"name"`
	Color     string  `yaml:"color" toml:"color"`
	Shininess float32 `yaml:"shininess" toml:"shininess"`
	Texture   string  `yaml:"texture,omitempty" toml:"texture,omitempty"`
}

// InstanceSummary describes one placed shape of a [Summary].
type InstanceSummary struct {
	Mesh       string     `yaml:"mesh" toml:"mesh"`
	Appearance string     `yaml:"appearance" toml:"appearance"`
	Position   [3]float32 `yaml:"position,flow" toml:"position"`
}

// counter is a [graph.Visitor] that counts instructions by kind.
type counter struct {
	counts map[string]int
}

func (c *counter) add(k graph.Kinds) { c.counts[k.String()]++ }

func (c *counter) VisitPrimitive(p graph.Primitive, world math32.Matrix4) {
	c.add(graph.KindPrimitive)
}

func (c *counter) VisitCustomMesh(m graph.CustomMesh, world math32.Matrix4) {
	c.add(graph.KindCustomMesh)
}

func (c *counter) VisitSetAppearance(a graph.SetAppearance) { c.add(graph.KindSetAppearance) }
func (c *counter) VisitTranslate(t graph.Translate)         { c.add(graph.KindTranslate) }
func (c *counter) VisitRotate(r graph.Rotate)               { c.add(graph.KindRotate) }
func (c *counter) VisitScale(s graph.Scale)                 { c.add(graph.KindScale) }
func (c *counter) VisitPushState()                          { c.add(graph.KindPushState) }
func (c *counter) VisitPopState()                           { c.add(graph.KindPopState) }
func (c *counter) VisitIdentity()                           { c.add(graph.KindIdentity) }
func (c *counter) EndCombine(cb graph.Combine)              {}

func (c *counter) VisitCombine(cb graph.Combine, world math32.Matrix4) bool {
	c.add(graph.KindCombine)
	return true
}

// Summarize returns the summary of the given graph.
func Summarize(g *graph.Graph) *Summary {
	cnt := &counter{counts: map[string]int{}}
	g.Traverse(cnt)
	shapes := Flatten(g)
	lib := NewLibrary(shapes)

	sm := &Summary{Instructions: cnt.counts, Shapes: len(shapes)}
	bb := math32.B3Empty()
	for i := range shapes {
		wm := shapes[i].WorldMesh()
		sm.Vertices += wm.NumVertex()
		sm.Triangles += wm.NumTriangle()
		sm.SurfaceArea += wm.SurfaceArea()
		bb.ExpandByBox(wm.BBox())
	}
	if len(shapes) > 0 {
		sm.Min = [3]float32{bb.Min.X, bb.Min.Y, bb.Min.Z}
		sm.Max = [3]float32{bb.Max.X, bb.Max.Y, bb.Max.Z}
	}
	sm.Meshes = append(sm.Meshes, lib.Meshes.Values...)
	for i, ap := range lib.Appearances.Keys {
		sm.Appearances = append(sm.Appearances, AppearanceSummary{
			Name:      lib.Appearances.Values[i],
			Color:     colors.AsHex(ap.Color()),
			Shininess: ap.Shininess(),
			Texture:   string(ap.Texture()),
		})
	}
	for _, in := range lib.Instances {
		pos := math32.Vector3{}.MulMatrix4(&in.World)
		sm.Instances = append(sm.Instances, InstanceSummary{
			Mesh:       lib.Meshes.Values[in.Mesh],
			Appearance: lib.Appearances.Values[in.Appearance],
			Position:   [3]float32{pos.X, pos.Y, pos.Z},
		})
	}
	return sm
}

// WriteYAML writes the summary as YAML.
func (sm *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sm); err != nil {
		return fmt.Errorf("export.WriteYAML: %w", err)
	}
	return enc.Close()
}

// WriteTOML writes the summary as TOML.
func (sm *Summary) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(sm); err != nil {
		return fmt.Errorf("export.WriteTOML: %w", err)
	}
	return nil
}
