// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export provides reference [graph.Visitor] implementations that
// turn a graph into forms that are easy to hand to other tools: a flat
// list of placed shapes, a deduplicated library of meshes and appearances
// for instanced rendering, and a YAML or TOML summary.
package export

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/graph"
	"cogentcore.org/gdesc/mesh"
)

// Shape is one shape of a flattened graph.
type Shape struct {

	// Kind is either [graph.KindPrimitive] or [graph.KindCustomMesh].
	Kind graph.Kinds

	// Request is the primitive request, for [graph.KindPrimitive].
	Request mesh.Request

	// Mesh is the mesh in local coordinates, shared with the graph.
	Mesh *mesh.Data

	// World is the placement of the mesh relative to the graph root.
	World math32.Matrix4

	// Appearance is the appearance of the shape.
	Appearance appearance.Appearance

	// Depth is the number of sub-graphs the shape is nested in.
	Depth int
}

// WorldMesh returns a copy of the mesh transformed to world coordinates.
func (sh *Shape) WorldMesh() *mesh.Data {
	return sh.Mesh.Transformed(&sh.World)
}

// Flattener is a [graph.Visitor] that collects all the shapes of a
// graph, including those of its sub-graphs, with their world transforms.
type Flattener struct {
	graph.VisitorBase

	// MaxDepth is the maximum sub-graph nesting depth to descend into;
	// 0 means no limit.
	MaxDepth int

	// Shapes are the collected shapes, in traversal order.
	Shapes []Shape

	depth int
}

func (fl *Flattener) VisitPrimitive(p graph.Primitive, world math32.Matrix4) {
	fl.Shapes = append(fl.Shapes, Shape{Kind: graph.KindPrimitive, Request: p.Request, Mesh: p.Mesh, World: world, Appearance: p.Appearance, Depth: fl.depth})
}

func (fl *Flattener) VisitCustomMesh(m graph.CustomMesh, world math32.Matrix4) {
	fl.Shapes = append(fl.Shapes, Shape{Kind: graph.KindCustomMesh, Mesh: m.Mesh, World: world, Appearance: m.Appearance, Depth: fl.depth})
}

func (fl *Flattener) VisitCombine(c graph.Combine, world math32.Matrix4) bool {
	if fl.MaxDepth > 0 && fl.depth >= fl.MaxDepth {
		return false
	}
	fl.depth++
	return true
}

func (fl *Flattener) EndCombine(c graph.Combine) {
	fl.depth--
}

// Flatten returns all the shapes of the given graph.
func Flatten(g *graph.Graph) []Shape {
	fl := &Flattener{}
	g.Traverse(fl)
	return fl.Shapes
}

// Merge returns a single mesh with all the given shapes in world
// coordinates, for backends that draw one static mesh.
// Normals and texture coordinates are kept only if all meshes have them.
func Merge(shapes []Shape) *mesh.Data {
	md := &mesh.Data{}
	hasNorm, hasTex := true, true
	for i := range shapes {
		hasNorm = hasNorm && len(shapes[i].Mesh.Normal) > 0
		hasTex = hasTex && len(shapes[i].Mesh.TexCoord) > 0
	}
	for i := range shapes {
		wm := shapes[i].WorldMesh()
		off := uint32(len(md.Vertex))
		md.Vertex = append(md.Vertex, wm.Vertex...)
		if hasNorm {
			md.Normal = append(md.Normal, wm.Normal...)
		}
		if hasTex {
			md.TexCoord = append(md.TexCoord, wm.TexCoord...)
		}
		for _, tri := range wm.Index {
			md.Index = append(md.Index, mesh.Triangle{tri[0] + off, tri[1] + off, tri[2] + off})
		}
	}
	return md
}
