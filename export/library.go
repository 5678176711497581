// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/graph"
	"cogentcore.org/gdesc/mesh"
)

// Library has the unique meshes and appearances of a set of shapes,
// and the instances that place them, as used by renderers that upload
// each mesh and material once.
type Library struct {

	// Meshes has the unique meshes, keyed by identity, with
	// generated names as values.
	Meshes keylist.List[*mesh.Data, string]

	// Appearances has the unique appearances, with generated names as values.
	Appearances keylist.List[appearance.Appearance, string]

	// Instances has one entry per shape.
	Instances []Instance

	// requests maps primitive request signatures to the first mesh
	// generated for them, so that equal primitives share one mesh.
	requests map[string]*mesh.Data
}

// Instance is a placed shape in a [Library].
type Instance struct {

	// Mesh is the index into [Library.Meshes].
	Mesh int

	// Appearance is the index into [Library.Appearances].
	Appearance int

	// World is the placement of the mesh.
	World math32.Matrix4
}

// NewLibrary returns a new library for the given shapes.
func NewLibrary(shapes []Shape) *Library {
	lb := &Library{}
	for i := range shapes {
		lb.Add(&shapes[i])
	}
	return lb
}

// Add adds the shape, and its mesh and appearance if new.
// Primitives with equal requests share the mesh of the first one.
func (lb *Library) Add(sh *Shape) Instance {
	md := sh.Mesh
	if sh.Kind == graph.KindPrimitive {
		if lb.requests == nil {
			lb.requests = map[string]*mesh.Data{}
		}
		sig := requestSignature(&sh.Request)
		if first, ok := lb.requests[sig]; ok {
			md = first
		} else {
			lb.requests[sig] = md
		}
	}
	mi := lb.Meshes.IndexByKey(md)
	if mi < 0 {
		mi = lb.Meshes.Len()
		name := fmt.Sprintf("mesh%d", mi)
		if sh.Kind == graph.KindPrimitive {
			name = fmt.Sprintf("%s%d", sh.Request.Kind, mi)
		}
		lb.Meshes.Set(md, name)
	}
	ai := lb.Appearances.IndexByKey(sh.Appearance)
	if ai < 0 {
		ai = lb.Appearances.Len()
		lb.Appearances.Set(sh.Appearance, fmt.Sprintf("appearance%d", ai))
	}
	in := Instance{Mesh: mi, Appearance: ai, World: sh.World}
	lb.Instances = append(lb.Instances, in)
	return in
}

func requestSignature(rq *mesh.Request) string {
	return fmt.Sprintf("%v %v %v %v", rq.Kind, rq.Dims, rq.Outline, rq.Resolution)
}
